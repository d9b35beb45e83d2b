// Package storagetest содержит общий набор тестов для реализаций storage.Storage.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
)

// Factory создает пустое хранилище для одного подтеста
type Factory func(t *testing.T) storage.Storage

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// Run прогоняет весь набор тестов против хранилища
func Run(t *testing.T, newStorage Factory) {
	t.Run("Accounts", func(t *testing.T) { testAccounts(t, newStorage(t)) })
	t.Run("AuthCodes", func(t *testing.T) { testAuthCodes(t, newStorage(t)) })
	t.Run("Tokens", func(t *testing.T) { testTokens(t, newStorage(t)) })
	t.Run("Transfers", func(t *testing.T) { testTransfers(t, newStorage(t)) })
	t.Run("ExpiredTransfers", func(t *testing.T) { testExpiredTransfers(t, newStorage(t)) })
}

func testAccounts(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	acc := &models.Account{ID: "google/1", Token: "token-1"}
	require.NoError(t, s.CreateAccount(ctx, acc))

	got, err := s.GetAccountByID(ctx, "google/1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", got.Token)
	assert.Nil(t, got.AuthCode)
	assert.Nil(t, got.AuthCodeExpires)

	got, err = s.GetAccountByToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "google/1", got.ID)

	// тот же id
	err = s.CreateAccount(ctx, &models.Account{ID: "google/1", Token: "token-other"})
	assert.ErrorIs(t, err, storage.ErrAccountExists)

	// тот же токен
	err = s.CreateAccount(ctx, &models.Account{ID: "google/2", Token: "token-1"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	_, err = s.GetAccountByID(ctx, "google/404")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)

	_, err = s.GetAccountByToken(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)

	require.NoError(t, s.DeleteAccountByToken(ctx, "token-1"))
	_, err = s.GetAccountByID(ctx, "google/1")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)

	assert.ErrorIs(t, s.DeleteAccountByToken(ctx, "token-1"), storage.ErrAccountNotFound)
}

func testAuthCodes(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	expires := time.UnixMilli(time.Now().Add(30 * time.Minute).UnixMilli())

	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: "google/a", Token: "tok-a"}))
	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: "google/b", Token: "tok-b"}))

	require.NoError(t, s.SetAuthCode(ctx, "google/a", "code0001", expires))

	got, err := s.GetAccountByAuthCode(ctx, "code0001")
	require.NoError(t, err)
	assert.Equal(t, "google/a", got.ID)
	require.NotNil(t, got.AuthCode)
	assert.Equal(t, "code0001", *got.AuthCode)
	require.NotNil(t, got.AuthCodeExpires)
	assert.Equal(t, expires.UnixMilli(), got.AuthCodeExpires.UnixMilli())

	// чужой аккаунт не может занять тот же код
	err = s.SetAuthCode(ctx, "google/b", "code0001", expires)
	assert.ErrorIs(t, err, storage.ErrConflict)

	// новый код перезаписывает старый
	require.NoError(t, s.SetAuthCode(ctx, "google/a", "code0002", expires))
	_, err = s.GetAccountByAuthCode(ctx, "code0001")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)

	// устаревший код не снимает текущий
	assert.ErrorIs(t, s.ClearAuthCode(ctx, "google/a", "code0001"), storage.ErrAccountNotFound)
	got, err = s.GetAccountByAuthCode(ctx, "code0002")
	require.NoError(t, err)
	assert.Equal(t, "google/a", got.ID)

	require.NoError(t, s.ClearAuthCode(ctx, "google/a", "code0002"))
	_, err = s.GetAccountByAuthCode(ctx, "code0002")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)

	got, err = s.GetAccountByID(ctx, "google/a")
	require.NoError(t, err)
	assert.Nil(t, got.AuthCode)

	// повторная очистка того же кода: второе погашение не проходит
	assert.ErrorIs(t, s.ClearAuthCode(ctx, "google/a", "code0002"), storage.ErrAccountNotFound)
	assert.ErrorIs(t, s.ClearAuthCode(ctx, "google/404", "code0002"), storage.ErrAccountNotFound)

	// после очистки код снова свободен
	require.NoError(t, s.SetAuthCode(ctx, "google/b", "code0001", expires))

	assert.ErrorIs(t, s.SetAuthCode(ctx, "google/404", "code0003", expires), storage.ErrAccountNotFound)
}

func testTokens(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: "google/a", Token: "tok-a"}))
	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: "google/b", Token: "tok-b"}))

	require.NoError(t, s.UpdateToken(ctx, "tok-a", "tok-a2"))

	_, err := s.GetAccountByToken(ctx, "tok-a")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)

	got, err := s.GetAccountByToken(ctx, "tok-a2")
	require.NoError(t, err)
	assert.Equal(t, "google/a", got.ID)

	assert.ErrorIs(t, s.UpdateToken(ctx, "tok-a2", "tok-b"), storage.ErrConflict)
	assert.ErrorIs(t, s.UpdateToken(ctx, "missing", "tok-z"), storage.ErrAccountNotFound)
}

func testTransfers(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	now := time.UnixMilli(time.Now().UnixMilli())

	first := &models.Transfer{
		TransferID:  "bbbbbbbbbbbbbbbb",
		WebURL:      "https://x.test/1",
		Nickname:    "Ana",
		FileName:    "report.pdf",
		APIURL:      strPtr("foo.example.com"),
		AuthorIP:    strPtr("1.2.3.4"),
		ExpiresDate: now.Add(10 * time.Minute),
	}
	second := &models.Transfer{
		TransferID:  "aaaaaaaaaaaaaaaa",
		WebURL:      "https://x.test/2",
		Nickname:    "Bob",
		FileName:    "photo.jpg",
		Latitude:    floatPtr(48.85),
		Longitude:   floatPtr(2.35),
		AuthorID:    strPtr("google/a"),
		ExpiresDate: now.Add(10 * time.Minute),
	}
	third := &models.Transfer{
		TransferID:  "cccccccccccccccc",
		WebURL:      "https://x.test/3",
		Nickname:    "Eve",
		FileName:    "notes.txt",
		AuthorID:    strPtr("google/a"),
		ExpiresDate: now.Add(5 * time.Minute),
	}

	for _, tr := range []*models.Transfer{first, second, third} {
		require.NoError(t, s.CreateTransfer(ctx, tr))
	}

	assert.ErrorIs(t, s.CreateTransfer(ctx, &models.Transfer{
		TransferID:  first.TransferID,
		WebURL:      "https://x.test/dup",
		Nickname:    "Dup",
		FileName:    "dup",
		ExpiresDate: now,
	}), storage.ErrConflict)

	all, err := s.ListActiveTransfers(ctx, now)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// ближайшее истечение первым, затем по id
	assert.Equal(t, "cccccccccccccccc", all[0].TransferID)
	assert.Equal(t, "aaaaaaaaaaaaaaaa", all[1].TransferID)
	assert.Equal(t, "bbbbbbbbbbbbbbbb", all[2].TransferID)

	b := all[2]
	require.NotNil(t, b.APIURL)
	assert.Equal(t, "foo.example.com", *b.APIURL)
	require.NotNil(t, b.AuthorIP)
	assert.Equal(t, "1.2.3.4", *b.AuthorIP)
	assert.Nil(t, b.Latitude)
	assert.Nil(t, b.AuthorID)
	assert.Equal(t, first.ExpiresDate.UnixMilli(), b.ExpiresDate.UnixMilli())

	a := all[1]
	require.NotNil(t, a.Latitude)
	assert.InDelta(t, 48.85, *a.Latitude, 1e-9)
	require.NotNil(t, a.Longitude)
	assert.InDelta(t, 2.35, *a.Longitude, 1e-9)
	assert.Nil(t, a.APIURL)

	own, err := s.ListActiveTransfersByAuthor(ctx, "google/a", now)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "cccccccccccccccc", own[0].TransferID)

	none, err := s.ListActiveTransfersByAuthor(ctx, "google/z", now)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, s.DeleteTransfer(ctx, first.TransferID))
	assert.ErrorIs(t, s.DeleteTransfer(ctx, first.TransferID), storage.ErrTransferNotFound)
}

func testExpiredTransfers(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	now := time.UnixMilli(time.Now().UnixMilli())

	require.NoError(t, s.CreateTransfer(ctx, &models.Transfer{
		TransferID:  "expired000000001",
		WebURL:      "https://x.test/old",
		Nickname:    "Old",
		FileName:    "old.txt",
		AuthorID:    strPtr("google/a"),
		ExpiresDate: now.Add(-time.Minute),
	}))
	require.NoError(t, s.CreateTransfer(ctx, &models.Transfer{
		TransferID:  "active0000000001",
		WebURL:      "https://x.test/new",
		Nickname:    "New",
		FileName:    "new.txt",
		AuthorID:    strPtr("google/a"),
		ExpiresDate: now.Add(time.Minute),
	}))

	active, err := s.ListActiveTransfers(ctx, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "active0000000001", active[0].TransferID)

	own, err := s.ListActiveTransfersByAuthor(ctx, "google/a", now)
	require.NoError(t, err)
	require.Len(t, own, 1)

	expired, err := s.ListExpiredTransferIDs(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"expired000000001"}, expired)
}
