package storage

import (
	"context"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
)

//go:generate moq -out transfer_mock.go . TransferStorage

// TransferStorage defines interface for transfer persistence
type TransferStorage interface {
	// CreateTransfer inserts a new transfer
	// Returns ErrConflict if transfer id is taken
	CreateTransfer(ctx context.Context, transfer *models.Transfer) error

	// ListActiveTransfers returns transfers not expired at now,
	// ordered by expires date ascending, then by transfer id
	ListActiveTransfers(ctx context.Context, now time.Time) ([]*models.Transfer, error)

	// ListActiveTransfersByAuthor returns active transfers of one author, same order
	ListActiveTransfersByAuthor(ctx context.Context, authorID string, now time.Time) ([]*models.Transfer, error)

	// ListExpiredTransferIDs returns ids of transfers expired at now
	ListExpiredTransferIDs(ctx context.Context, now time.Time) ([]string, error)

	// DeleteTransfer deletes a transfer by id
	// Returns ErrTransferNotFound if transfer doesn't exist
	DeleteTransfer(ctx context.Context, transferID string) error
}

// Storage aggregates everything the relay needs from a record store
type Storage interface {
	AccountStorage
	TransferStorage

	// Ping checks store availability
	Ping(ctx context.Context) error

	// Close releases store resources
	Close() error
}
