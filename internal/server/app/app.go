// Package app собирает relay-сервер: хранилище, сервисы, маршруты и жизненный цикл.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/iudanet/stendrelay/internal/config"
	"github.com/iudanet/stendrelay/internal/sanitize"
	"github.com/iudanet/stendrelay/internal/server/handlers"
	"github.com/iudanet/stendrelay/internal/server/middleware"
	"github.com/iudanet/stendrelay/internal/server/oauth"
	"github.com/iudanet/stendrelay/internal/server/service"
	"github.com/iudanet/stendrelay/internal/server/storage"
	"github.com/iudanet/stendrelay/internal/server/sweeper"
)

// readHeaderTimeout защита от медленных клиентов
const readHeaderTimeout = 10 * time.Second

// App relay-сервер
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    storage.Storage
	redis    *redis.Client
	sweeper  *sweeper.Sweeper
	handler  http.Handler
	closers  []func() error
	closeErr error
	once     sync.Once
}

// New открывает хранилище и Redis (если настроен) и собирает маршруты
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*App, error) {
	sanitizer, err := loadSanitizer(cfg.SanitizePolicyFile)
	if err != nil {
		return nil, err
	}

	store, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		closers: []func() error{store.Close},
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		a.redis = redis.NewClient(opts)
		a.closers = append(a.closers, a.redis.Close)
		if err := a.redis.Ping(ctx).Err(); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	accounts := service.NewAccountService(logger, store)
	registry := service.NewTransferRegistry(logger, store, accounts, sanitizer)

	var provider handlers.IdentityProvider
	if cfg.GoogleEnabled() {
		provider = oauth.NewGoogle(oauth.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURI:  cfg.GoogleRedirectURI,
			StateSecret:  cfg.OAuthStateSecret,
		})
	} else {
		logger.Warn("Google login is not configured, /auth/google routes will answer 503")
	}

	a.sweeper = sweeper.New(registry, cfg.SweepInterval, logger)
	a.handler = a.routes(routeDeps{
		version:   version,
		provider:  provider,
		accounts:  accounts,
		transfers: registry,
	})

	logger.Info("Relay initialized",
		slog.String("database", databaseDriver(cfg)),
		slog.Bool("redis", a.redis != nil),
		slog.Bool("google", provider != nil),
		slog.String("reverse_proxy", cfg.ReverseProxy))

	return a, nil
}

func loadSanitizer(policyFile string) (*sanitize.Sanitizer, error) {
	if policyFile == "" {
		return sanitize.Default(), nil
	}
	policy, err := sanitize.LoadPolicy(policyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load sanitize policy: %w", err)
	}
	return sanitize.New(policy)
}

func databaseDriver(cfg *config.Config) string {
	driver, _, _ := cfg.Database()
	return driver
}

type routeDeps struct {
	provider  handlers.IdentityProvider
	accounts  *service.AccountService
	transfers *service.TransferRegistry
	version   string
}

// routes собирает chi router со всеми маршрутами и лимитами
func (a *App) routes(deps routeDeps) http.Handler {
	instance := handlers.NewInstanceHandler(a.logger, deps.version, a.cfg.DocsURL)
	health := handlers.NewHealthHandler(a.logger, a.store, deps.version)
	auth := handlers.NewAuthHandler(a.logger, deps.provider, deps.accounts, a.cfg.ClientRedirectURI)
	account := handlers.NewAccountHandler(a.logger, deps.accounts, deps.transfers)
	transfers := handlers.NewTransferHandler(a.logger, deps.transfers)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestIDMiddleware,
		middleware.ClientIPMiddleware(a.cfg.ReverseProxy),
		middleware.LoggingWithSkip(a.logger, []string{"/health"}),
		middleware.RecoveryMiddleware(a.logger),
		cors.New(cors.Options{
			AllowedOrigins: a.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{"Retry-After", middleware.RequestIDHeader},
			MaxAge:         600,
		}).Handler,
		middleware.BearerMiddleware,
		a.limit(globalLimit),
	)
	r.NotFound(instance.NotFound)
	r.MethodNotAllowed(instance.MethodNotAllowed)

	r.Get("/", instance.Root)
	r.Get("/instance", instance.Instance)
	r.Get("/health", health.Health)
	r.Get("/test/ip", instance.IP)
	r.Get("/test/distance-coordinates", instance.Distance)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/google/login", auth.Login)
		r.With(a.limit(callbackLimit)).Get("/google/callback/{responseType}", auth.Callback)
		r.With(a.limit(checkcodeLimit)).Get("/checkcode", auth.CheckCode)
	})

	r.Route("/account", func(r chi.Router) {
		r.With(a.limit(ownLimit)).Get("/transferts", account.Transfers)
		r.With(a.limit(resetLimit)).Post("/reset", account.Reset)
		r.With(a.limit(deleteLimit)).Post("/delete", account.Delete)
	})

	r.Route("/transferts", func(r chi.Router) {
		r.With(a.limit(createLimit)).Post("/create", transfers.Create)
		r.With(a.limit(listLimit)).Post("/list", transfers.List)
	})

	return r
}

// Handler корневой http.Handler
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run слушает cfg.Addr() до отмены ctx
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.cfg.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln и запускает очистку истекших переводов.
// После отмены ctx ждет завершения запросов не дольше SHUTDOWN_TIMEOUT.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.sweeper.Run(sweepCtx)
	}()
	defer func() {
		stopSweep()
		wg.Wait()
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Relay listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down", slog.Duration("timeout", a.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Close освобождает хранилище, Redis и лимитеры. Повторный вызов безопасен.
func (a *App) Close() error {
	a.once.Do(func() {
		var errs []error
		for i := len(a.closers) - 1; i >= 0; i-- {
			if err := a.closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		a.closeErr = errors.Join(errs...)
	})
	return a.closeErr
}
