package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/stendrelay/internal/client/api"
	"github.com/iudanet/stendrelay/internal/client/iocli"
	"github.com/iudanet/stendrelay/internal/client/storage"
	pkgapi "github.com/iudanet/stendrelay/pkg/api"
)

// ErrUnknownCommand возвращается Run для неизвестной команды
var ErrUnknownCommand = errors.New("unknown command")

// ErrNotAuthenticated нет сохраненного токена для сервера
var ErrNotAuthenticated = errors.New("not authenticated, run 'stendrelay login' first")

//go:generate moq -out relayapi_mock.go . RelayAPI

// RelayAPI методы relay сервера, которые использует клиент
type RelayAPI interface {
	BaseURL() string
	LoginURL(responseType string) (string, error)
	Instance(ctx context.Context) (*pkgapi.InstanceResponse, error)
	IP(ctx context.Context) (*pkgapi.IPResponse, error)
	CheckCode(ctx context.Context, code string) (*pkgapi.TokenResponse, error)
	Reset(ctx context.Context, token string) (*pkgapi.TokenResponse, error)
	DeleteAccount(ctx context.Context, token string) (*pkgapi.ActionResponse, error)
	AccountTransfers(ctx context.Context, token string) (*pkgapi.AccountTransfersResponse, error)
	CreateTransfer(ctx context.Context, token string, req pkgapi.CreateTransferRequest) (*pkgapi.CreateTransferResponse, error)
	ListTransfers(ctx context.Context, token string, req pkgapi.ListTransfersRequest) (*pkgapi.ListTransfersResponse, error)
}

// Store локальное хранилище клиента
type Store interface {
	storage.SessionStorage
	storage.HistoryStorage
}

type Cli struct {
	io    iocli.IO
	api   RelayAPI
	store Store
	now   func() time.Time
}

func New(io iocli.IO, apiClient RelayAPI, store Store) *Cli {
	return &Cli{
		io:    io,
		api:   apiClient,
		store: store,
		now:   time.Now,
	}
}

// Run выполняет команду с аргументами args
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "reset":
		return c.runReset(ctx)
	case "delete-account":
		return c.runDeleteAccount(ctx, args)
	case "send":
		return c.runSend(ctx, args)
	case "find":
		return c.runFind(ctx, args)
	case "mine":
		return c.runMine(ctx)
	case "history":
		return c.runHistory(ctx)
	case "ip":
		return c.runIP(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `Stend Relay Client

Usage:
  stendrelay [OPTIONS] COMMAND [ARGS]

Options:
  -version        Show version information
  -server URL     Relay server URL (default: http://localhost:3000)
  -db PATH        Path to local database (default: stendrelay-client.db)

Commands:
  login           Sign in with Google and store the session token
  logout          Forget the local session token
  status          Show session and server information
  reset           Rotate the session token
  delete-account  Delete the account on the server
  send            Publish a transfer (-url, -file, -nickname, -api-url, -lat, -lon, -expires, -anonymous)
  find            Find transfers near you (-api-url, -lat, -lon, -anonymous)
  mine            List transfers published with your account
  history         List transfers published from this machine
  ip              Show the address the server sees

Examples:
  stendrelay -server https://relay.example.com login
  stendrelay send -url https://files.example.com/f/abc -file report.pdf -lat 48.85 -lon 2.35 -expires 10
  stendrelay find -lat 48.86 -lon 2.34
`)
}

// newFlagSet набор флагов подкоманды, ошибки разбора пишутся в c.io
func (c *Cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.io)
	return fs
}

// token возвращает сохраненный токен для текущего сервера
func (c *Cli) token(ctx context.Context) (string, error) {
	session, err := c.store.GetSession(ctx, c.api.BaseURL())
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return session.Token, nil
}

// optionalToken как token, но отсутствие сессии не ошибка
func (c *Cli) optionalToken(ctx context.Context) (string, error) {
	token, err := c.token(ctx)
	if errors.Is(err, ErrNotAuthenticated) {
		return "", nil
	}
	return token, err
}

func (c *Cli) saveToken(ctx context.Context, token string) error {
	session := &storage.Session{
		ServerURL: c.api.BaseURL(),
		Token:     token,
		SavedAt:   c.now().Unix(),
	}
	if err := c.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// handleAPIError удаляет локальный токен, если сервер вернул DELETE_TOKEN
func (c *Cli) handleAPIError(ctx context.Context, err error) error {
	if !api.ShouldDropToken(err) {
		return err
	}
	if delErr := c.store.DeleteSession(ctx, c.api.BaseURL()); delErr != nil {
		return errors.Join(err, fmt.Errorf("failed to delete session: %w", delErr))
	}
	c.io.Println("Session is no longer valid, local token removed.")
	return err
}
