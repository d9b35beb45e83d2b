// Package memory реализует storage.Storage в памяти процесса.
// Используется в тестах и при DATABASE_URL=memory://.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
)

// Storage хранит аккаунты и переводы в map под одним RWMutex
type Storage struct {
	accounts  map[string]*models.Account // id -> account
	byToken   map[string]string          // token -> id
	byCode    map[string]string          // auth code -> id
	transfers map[string]*models.Transfer
	mu        sync.RWMutex
}

// New создает пустое хранилище
func New() *Storage {
	return &Storage{
		accounts:  make(map[string]*models.Account),
		byToken:   make(map[string]string),
		byCode:    make(map[string]string),
		transfers: make(map[string]*models.Transfer),
	}
}

// Ping всегда успешен
func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close ничего не освобождает
func (s *Storage) Close() error {
	return nil
}

// --- AccountStorage ---

// CreateAccount inserts a new account
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return storage.ErrAccountExists
	}
	if _, taken := s.byToken[account.Token]; taken {
		return storage.ErrConflict
	}
	if account.AuthCode != nil {
		if _, taken := s.byCode[*account.AuthCode]; taken {
			return storage.ErrConflict
		}
		s.byCode[*account.AuthCode] = account.ID
	}

	s.accounts[account.ID] = cloneAccount(account)
	s.byToken[account.Token] = account.ID
	return nil
}

// GetAccountByID retrieves account by id
func (s *Storage) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, storage.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

// GetAccountByToken retrieves account by bearer token
func (s *Storage) GetAccountByToken(ctx context.Context, token string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byToken[token]
	if !ok {
		return nil, storage.ErrAccountNotFound
	}
	return cloneAccount(s.accounts[id]), nil
}

// GetAccountByAuthCode retrieves account by auth code
func (s *Storage) GetAccountByAuthCode(ctx context.Context, code string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byCode[code]
	if !ok {
		return nil, storage.ErrAccountNotFound
	}
	return cloneAccount(s.accounts[id]), nil
}

// SetAuthCode overwrites the auth code of the account
func (s *Storage) SetAuthCode(ctx context.Context, id, code string, expires time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return storage.ErrAccountNotFound
	}
	if owner, taken := s.byCode[code]; taken && owner != id {
		return storage.ErrConflict
	}

	if a.AuthCode != nil {
		delete(s.byCode, *a.AuthCode)
	}
	a.AuthCode = &code
	a.AuthCodeExpires = &expires
	s.byCode[code] = id
	return nil
}

// ClearAuthCode removes code from the account if it still holds it
func (s *Storage) ClearAuthCode(ctx context.Context, id, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok || a.AuthCode == nil || *a.AuthCode != code {
		return storage.ErrAccountNotFound
	}
	delete(s.byCode, code)
	a.AuthCode = nil
	a.AuthCodeExpires = nil
	return nil
}

// UpdateToken replaces oldToken with newToken
func (s *Storage) UpdateToken(ctx context.Context, oldToken, newToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byToken[oldToken]
	if !ok {
		return storage.ErrAccountNotFound
	}
	if _, taken := s.byToken[newToken]; taken {
		return storage.ErrConflict
	}

	delete(s.byToken, oldToken)
	s.byToken[newToken] = id
	s.accounts[id].Token = newToken
	return nil
}

// DeleteAccountByToken deletes the account holding token
func (s *Storage) DeleteAccountByToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byToken[token]
	if !ok {
		return storage.ErrAccountNotFound
	}
	a := s.accounts[id]
	if a.AuthCode != nil {
		delete(s.byCode, *a.AuthCode)
	}
	delete(s.byToken, token)
	delete(s.accounts, id)
	return nil
}

// --- TransferStorage ---

// CreateTransfer inserts a new transfer
func (s *Storage) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transfers[transfer.TransferID]; exists {
		return storage.ErrConflict
	}
	t := *transfer
	s.transfers[transfer.TransferID] = &t
	return nil
}

// ListActiveTransfers returns transfers not expired at now
func (s *Storage) ListActiveTransfers(ctx context.Context, now time.Time) ([]*models.Transfer, error) {
	return s.filter(func(t *models.Transfer) bool {
		return !t.IsExpired(now)
	}), nil
}

// ListActiveTransfersByAuthor returns active transfers of one author
func (s *Storage) ListActiveTransfersByAuthor(ctx context.Context, authorID string, now time.Time) ([]*models.Transfer, error) {
	return s.filter(func(t *models.Transfer) bool {
		return !t.IsExpired(now) && t.AuthorID != nil && *t.AuthorID == authorID
	}), nil
}

// ListExpiredTransferIDs returns ids of transfers expired at now
func (s *Storage) ListExpiredTransferIDs(ctx context.Context, now time.Time) ([]string, error) {
	expired := s.filter(func(t *models.Transfer) bool {
		return t.IsExpired(now)
	})
	ids := make([]string, 0, len(expired))
	for _, t := range expired {
		ids = append(ids, t.TransferID)
	}
	return ids, nil
}

// DeleteTransfer deletes a transfer by id
func (s *Storage) DeleteTransfer(ctx context.Context, transferID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transfers[transferID]; !ok {
		return storage.ErrTransferNotFound
	}
	delete(s.transfers, transferID)
	return nil
}

func (s *Storage) filter(keep func(*models.Transfer) bool) []*models.Transfer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Transfer, 0)
	for _, t := range s.transfers {
		if keep(t) {
			c := *t
			result = append(result, &c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].ExpiresDate.Equal(result[j].ExpiresDate) {
			return result[i].ExpiresDate.Before(result[j].ExpiresDate)
		}
		return result[i].TransferID < result[j].TransferID
	})
	return result
}

func cloneAccount(a *models.Account) *models.Account {
	c := *a
	if a.AuthCode != nil {
		code := *a.AuthCode
		c.AuthCode = &code
	}
	if a.AuthCodeExpires != nil {
		exp := *a.AuthCodeExpires
		c.AuthCodeExpires = &exp
	}
	return &c
}

var _ storage.Storage = (*Storage)(nil)
