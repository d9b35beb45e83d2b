package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
	"github.com/iudanet/stendrelay/internal/server/storage/memory"
)

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	require.Error(t, err)
	var svcErr *Error
	require.True(t, errors.As(err, &svcErr), "expected *service.Error, got %T", err)
	assert.Equal(t, kind, svcErr.Kind)
	return svcErr
}

func TestAccountService_ResolveBearer(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewAccountService(setupTestLogger(), store)

	require.NoError(t, store.CreateAccount(ctx, &models.Account{ID: "google/1", Token: "tok"}))

	t.Run("valid token", func(t *testing.T) {
		acc, err := svc.ResolveBearer(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, "google/1", acc.ID)
	})

	t.Run("no token", func(t *testing.T) {
		svcErr := requireKind(t, mustErr(svc.ResolveBearer(ctx, "")), KindUnauthorized)
		assert.Empty(t, svcErr.Action)
	})

	t.Run("stale token", func(t *testing.T) {
		svcErr := requireKind(t, mustErr(svc.ResolveBearer(ctx, "unknown")), KindUnauthorized)
		assert.Equal(t, ActionDeleteToken, svcErr.Action)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := accountsOver(store)
		failing.GetAccountByTokenFunc = func(ctx context.Context, token string) (*models.Account, error) {
			return nil, errors.New("db down")
		}
		svcErr := requireKind(t, mustErr(NewAccountService(setupTestLogger(), failing).ResolveBearer(ctx, "tok")), KindStore)
		assert.Contains(t, svcErr.Message, "db down")
		assert.Len(t, failing.GetAccountByTokenCalls(), 1)
	})
}

func TestAccountService_LoginOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent on identity", func(t *testing.T) {
		store := memory.New()
		svc := NewAccountService(setupTestLogger(), store)

		first, err := svc.LoginOrCreate(ctx, "12345")
		require.NoError(t, err)
		assert.Equal(t, "google/12345", first.ID)
		assert.Len(t, first.Token, 64)

		second, err := svc.LoginOrCreate(ctx, "12345")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Token, second.Token)
	})

	t.Run("token collision retried", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, store.CreateAccount(ctx, &models.Account{ID: "google/other", Token: "taken"}))

		svc := NewAccountService(setupTestLogger(), store, WithGenerators(sequence("taken", "fresh"), sequence("code")))
		acc, err := svc.LoginOrCreate(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "fresh", acc.Token)
	})

	t.Run("collisions are bounded", func(t *testing.T) {
		store := memory.New()
		require.NoError(t, store.CreateAccount(ctx, &models.Account{ID: "google/other", Token: "taken"}))

		svc := NewAccountService(setupTestLogger(), store, WithGenerators(sequence("taken"), sequence("code")))
		requireKind(t, mustErr(svc.LoginOrCreate(ctx, "1")), KindStore)
	})

	t.Run("concurrent creation returns existing account", func(t *testing.T) {
		store := memory.New()
		racing := accountsOver(store)
		// другой запрос успевает создать аккаунт между чтением и вставкой
		racing.CreateAccountFunc = func(ctx context.Context, account *models.Account) error {
			if err := store.CreateAccount(ctx, &models.Account{ID: account.ID, Token: "winner-token"}); err != nil {
				return err
			}
			return storage.ErrAccountExists
		}
		svc := NewAccountService(setupTestLogger(), racing)

		acc, err := svc.LoginOrCreate(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "winner-token", acc.Token)
		assert.Len(t, racing.CreateAccountCalls(), 1)
	})

	t.Run("creation logs provider", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
		svc := NewAccountService(logger, memory.New())

		_, err := svc.LoginOrCreate(ctx, "77")
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "provider=google")
		assert.Contains(t, logs.String(), "account_id=google/77")
	})

	t.Run("empty provider id", func(t *testing.T) {
		svc := NewAccountService(setupTestLogger(), memory.New())
		requireKind(t, mustErr(svc.LoginOrCreate(ctx, "")), KindUpstream)
	})
}

func TestAccountService_AuthCodeBridge(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	store := memory.New()
	svc := NewAccountService(setupTestLogger(), store, WithAccountClock(clock.Now))

	acc, err := svc.LoginOrCreate(ctx, "42")
	require.NoError(t, err)

	t.Run("code redeemed once", func(t *testing.T) {
		code, err := svc.IssueAuthCode(ctx, acc)
		require.NoError(t, err)
		assert.Len(t, code, 8)

		stored, err := store.GetAccountByID(ctx, acc.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.AuthCodeExpires)
		assert.Equal(t, clock.Now().Add(AuthCodeTTL), *stored.AuthCodeExpires)

		tok, err := svc.RedeemAuthCode(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, acc.Token, tok)

		requireKind(t, mustErr(svc.RedeemAuthCode(ctx, code)), KindNotFound)
	})

	t.Run("new code replaces old one", func(t *testing.T) {
		first, err := svc.IssueAuthCode(ctx, acc)
		require.NoError(t, err)
		second, err := svc.IssueAuthCode(ctx, acc)
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		requireKind(t, mustErr(svc.RedeemAuthCode(ctx, first)), KindNotFound)
		_, err = svc.RedeemAuthCode(ctx, second)
		require.NoError(t, err)
	})

	t.Run("expired code cleared", func(t *testing.T) {
		code, err := svc.IssueAuthCode(ctx, acc)
		require.NoError(t, err)

		clock.Advance(AuthCodeTTL + time.Second)

		requireKind(t, mustErr(svc.RedeemAuthCode(ctx, code)), KindExpired)
		requireKind(t, mustErr(svc.RedeemAuthCode(ctx, code)), KindNotFound)
	})

	t.Run("missing code", func(t *testing.T) {
		requireKind(t, mustErr(svc.RedeemAuthCode(ctx, "")), KindMissingParameters)
	})

	t.Run("code collision retried", func(t *testing.T) {
		other, err := svc.LoginOrCreate(ctx, "43")
		require.NoError(t, err)
		require.NoError(t, store.SetAuthCode(ctx, other.ID, "taken000", clock.Now().Add(time.Hour)))

		gen := NewAccountService(setupTestLogger(), store,
			WithAccountClock(clock.Now),
			WithGenerators(sequence("unused"), sequence("taken000", "fresh000")))

		code, err := gen.IssueAuthCode(ctx, acc)
		require.NoError(t, err)
		assert.Equal(t, "fresh000", code)
	})
}

func TestAccountService_RotateToken(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewAccountService(setupTestLogger(), store)

	acc, err := svc.LoginOrCreate(ctx, "7")
	require.NoError(t, err)

	newToken, err := svc.RotateToken(ctx, acc.Token)
	require.NoError(t, err)
	assert.NotEqual(t, acc.Token, newToken)
	assert.Len(t, newToken, 64)

	svcErr := requireKind(t, mustErr(svc.ResolveBearer(ctx, acc.Token)), KindUnauthorized)
	assert.Equal(t, ActionDeleteToken, svcErr.Action)

	resolved, err := svc.ResolveBearer(ctx, newToken)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, resolved.ID)

	requireKind(t, mustErr(svc.RotateToken(ctx, "")), KindUnauthorized)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewAccountService(setupTestLogger(), store)

	acc, err := svc.LoginOrCreate(ctx, "8")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, acc.Token))

	_, err = store.GetAccountByID(ctx, acc.ID)
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)

	svcErr := requireKind(t, svc.DeleteAccount(ctx, acc.Token), KindUnauthorized)
	assert.Equal(t, ActionDeleteToken, svcErr.Action)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Unauthorized", KindUnauthorized.String())
	assert.Equal(t, "Expired", KindExpired.String())
	assert.Equal(t, "Unknown error", Kind(0).String())
}

func mustErr[T any](_ T, err error) error {
	return err
}

func TestAccountService_RedeemAuthCodeInterleaving(t *testing.T) {
	ctx := context.Background()

	t.Run("concurrent redemptions of one code", func(t *testing.T) {
		store := memory.New()
		accounts := accountsOver(store)
		svc := NewAccountService(setupTestLogger(), accounts)

		acc, err := svc.LoginOrCreate(ctx, "1")
		require.NoError(t, err)
		code, err := svc.IssueAuthCode(ctx, acc)
		require.NoError(t, err)

		// первое погашение прочитало аккаунт, второе проходит целиком до его очистки
		var innerToken string
		var innerErr error
		nested := false
		accounts.GetAccountByAuthCodeFunc = func(ctx context.Context, c string) (*models.Account, error) {
			snapshot, err := store.GetAccountByAuthCode(ctx, c)
			if !nested {
				nested = true
				innerToken, innerErr = svc.RedeemAuthCode(ctx, c)
			}
			return snapshot, err
		}

		_, outerErr := svc.RedeemAuthCode(ctx, code)

		require.NoError(t, innerErr)
		assert.Equal(t, acc.Token, innerToken)
		requireKind(t, outerErr, KindNotFound)
		assert.Len(t, accounts.ClearAuthCodeCalls(), 2)
	})

	t.Run("stale redemption keeps newer code", func(t *testing.T) {
		store := memory.New()
		accounts := accountsOver(store)
		svc := NewAccountService(setupTestLogger(), accounts)

		acc, err := svc.LoginOrCreate(ctx, "2")
		require.NoError(t, err)
		oldCode, err := svc.IssueAuthCode(ctx, acc)
		require.NoError(t, err)

		// новый вход выдает код, пока погашение старого еще не дошло до очистки
		var newCode string
		accounts.GetAccountByAuthCodeFunc = func(ctx context.Context, c string) (*models.Account, error) {
			snapshot, err := store.GetAccountByAuthCode(ctx, c)
			if c == oldCode && newCode == "" {
				var issueErr error
				newCode, issueErr = svc.IssueAuthCode(ctx, acc)
				require.NoError(t, issueErr)
			}
			return snapshot, err
		}

		requireKind(t, mustErr(svc.RedeemAuthCode(ctx, oldCode)), KindNotFound)
		require.NotEmpty(t, newCode)

		tok, err := svc.RedeemAuthCode(ctx, newCode)
		require.NoError(t, err)
		assert.Equal(t, acc.Token, tok)
	})
}
