package service

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/stendrelay/internal/server/storage"
	"github.com/iudanet/stendrelay/internal/server/storage/memory"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// testClock управляемые часы для тестов
type testClock struct {
	now time.Time
	mu  sync.Mutex
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sequence генератор, возвращающий значения по порядку, затем последнее
func sequence(values ...string) Generator {
	var mu sync.Mutex
	i := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v, nil
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// accountsOver мок AccountStorage, по умолчанию делегирующий в store.
// Тест подменяет отдельные Func поля.
func accountsOver(store *memory.Storage) *storage.AccountStorageMock {
	return &storage.AccountStorageMock{
		ClearAuthCodeFunc:        store.ClearAuthCode,
		CreateAccountFunc:        store.CreateAccount,
		DeleteAccountByTokenFunc: store.DeleteAccountByToken,
		GetAccountByAuthCodeFunc: store.GetAccountByAuthCode,
		GetAccountByIDFunc:       store.GetAccountByID,
		GetAccountByTokenFunc:    store.GetAccountByToken,
		SetAuthCodeFunc:          store.SetAuthCode,
		UpdateTokenFunc:          store.UpdateToken,
	}
}

// transfersOver мок TransferStorage, по умолчанию делегирующий в store
func transfersOver(store *memory.Storage) *storage.TransferStorageMock {
	return &storage.TransferStorageMock{
		CreateTransferFunc:              store.CreateTransfer,
		DeleteTransferFunc:              store.DeleteTransfer,
		ListActiveTransfersFunc:         store.ListActiveTransfers,
		ListActiveTransfersByAuthorFunc: store.ListActiveTransfersByAuthor,
		ListExpiredTransferIDsFunc:      store.ListExpiredTransferIDs,
	}
}
