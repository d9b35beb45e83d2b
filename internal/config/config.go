// Package config загружает конфигурацию сервера из окружения.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config конфигурация relay-сервера
type Config struct {
	DatabaseURL        string        `envconfig:"DATABASE_URL" default:"sqlite://stendrelay.db"`
	RedisURL           string        `envconfig:"REDIS_URL"`
	ReverseProxy       string        `envconfig:"USING_REVERSE_PROXY"`
	GoogleClientID     string        `envconfig:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `envconfig:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `envconfig:"GOOGLE_REDIRECT_URI"`
	OAuthStateSecret   string        `envconfig:"OAUTH_STATE_SECRET"`
	ClientRedirectURI  string        `envconfig:"CLIENT_REDIRECT_URI" default:"stend://globalserver/auth"`
	DocsURL            string        `envconfig:"DOCS_URL" default:"https://stend.app/docs"`
	SanitizePolicyFile string        `envconfig:"SANITIZE_POLICY_FILE"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string        `envconfig:"LOG_FORMAT" default:"text"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	Port               int           `envconfig:"PORT" default:"3000"`
	SweepInterval      time.Duration `envconfig:"SWEEP_INTERVAL" default:"12h"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Ошибки конфигурации
var (
	ErrUnsupportedDatabase = errors.New("unsupported DATABASE_URL scheme")
	ErrInvalidLogFormat    = errors.New("LOG_FORMAT must be text or json")
	ErrMissingStateSecret  = errors.New("OAUTH_STATE_SECRET is required when Google login is configured")
)

// Load читает .env (если есть) и переменные окружения.
// Путь к .env задается ENV_FILE, по умолчанию ".env".
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// отсутствующий файл не ошибка; существующие переменные не перезаписываются
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if _, _, err := c.Database(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}
	if c.GoogleEnabled() && c.OAuthStateSecret == "" {
		return ErrMissingStateSecret
	}
	return nil
}

// Database разбирает DATABASE_URL на драйвер и строку подключения.
// sqlite://path -> ("sqlite", path); postgres://... -> ("postgres", url целиком);
// memory:// -> ("memory", "").
func (c *Config) Database() (driver, dsn string, err error) {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	switch u.Scheme {
	case "sqlite", "sqlite3":
		path := strings.TrimPrefix(c.DatabaseURL, u.Scheme+"://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDatabase)
		}
		return "sqlite", path, nil
	case "postgres", "postgresql":
		return "postgres", c.DatabaseURL, nil
	case "memory":
		return "memory", "", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDatabase, u.Scheme)
	}
}

// GoogleEnabled сообщает, настроен ли вход через Google
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURI != ""
}

// Addr адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// JSONLogs сообщает, нужен ли JSON-формат логов
func (c *Config) JSONLogs() bool {
	return strings.EqualFold(c.LogFormat, "json")
}
