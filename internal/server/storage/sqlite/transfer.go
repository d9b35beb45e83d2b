package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
)

const transferColumns = `transfer_id, author_id, web_url, api_url, author_ip,
	latitude, longitude, nickname, file_name, expires_date`

// CreateTransfer creates a new transfer
func (s *Storage) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	query := `INSERT INTO transfers (` + transferColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		transfer.TransferID,
		transfer.AuthorID,
		transfer.WebURL,
		transfer.APIURL,
		transfer.AuthorIP,
		transfer.Latitude,
		transfer.Longitude,
		transfer.Nickname,
		transfer.FileName,
		transfer.ExpiresDate.UnixMilli(),
	)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return fmt.Errorf("failed to insert transfer: %w", err)
	}

	return nil
}

// ListActiveTransfers returns transfers not expired at now
func (s *Storage) ListActiveTransfers(ctx context.Context, now time.Time) ([]*models.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE expires_date >= ?
		ORDER BY expires_date ASC, transfer_id ASC
	`
	return s.queryTransfers(ctx, query, now.UnixMilli())
}

// ListActiveTransfersByAuthor returns active transfers of one author
func (s *Storage) ListActiveTransfersByAuthor(ctx context.Context, authorID string, now time.Time) ([]*models.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE author_id = ? AND expires_date >= ?
		ORDER BY expires_date ASC, transfer_id ASC
	`
	return s.queryTransfers(ctx, query, authorID, now.UnixMilli())
}

// ListExpiredTransferIDs returns ids of transfers expired at now
func (s *Storage) ListExpiredTransferIDs(ctx context.Context, now time.Time) ([]string, error) {
	query := `SELECT transfer_id FROM transfers WHERE expires_date < ? ORDER BY expires_date ASC`

	rows, err := s.db.QueryContext(ctx, query, now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query expired transfers: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan transfer id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// DeleteTransfer deletes a transfer by id
func (s *Storage) DeleteTransfer(ctx context.Context, transferID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transfers WHERE transfer_id = ?`, transferID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}

	return expectRows(result, storage.ErrTransferNotFound)
}

func (s *Storage) queryTransfers(ctx context.Context, query string, args ...any) ([]*models.Transfer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]*models.Transfer, 0)
	for rows.Next() {
		var (
			t         models.Transfer
			authorID  sql.NullString
			apiURL    sql.NullString
			authorIP  sql.NullString
			latitude  sql.NullFloat64
			longitude sql.NullFloat64
			expires   int64
		)

		if err := rows.Scan(
			&t.TransferID,
			&authorID,
			&t.WebURL,
			&apiURL,
			&authorIP,
			&latitude,
			&longitude,
			&t.Nickname,
			&t.FileName,
			&expires,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}

		if authorID.Valid {
			t.AuthorID = &authorID.String
		}
		if apiURL.Valid {
			t.APIURL = &apiURL.String
		}
		if authorIP.Valid {
			t.AuthorIP = &authorIP.String
		}
		if latitude.Valid {
			t.Latitude = &latitude.Float64
		}
		if longitude.Valid {
			t.Longitude = &longitude.Float64
		}
		t.ExpiresDate = time.UnixMilli(expires)

		transfers = append(transfers, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return transfers, nil
}
