package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iudanet/stendrelay/internal/models"
	"github.com/iudanet/stendrelay/internal/server/storage"
)

type transferRow struct {
	AuthorID    sql.NullString  `db:"author_id"`
	APIURL      sql.NullString  `db:"api_url"`
	AuthorIP    sql.NullString  `db:"author_ip"`
	TransferID  string          `db:"transfer_id"`
	WebURL      string          `db:"web_url"`
	Nickname    string          `db:"nickname"`
	FileName    string          `db:"file_name"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
	ExpiresDate int64           `db:"expires_date"`
}

func (r transferRow) toModel() *models.Transfer {
	t := &models.Transfer{
		TransferID:  r.TransferID,
		WebURL:      r.WebURL,
		Nickname:    r.Nickname,
		FileName:    r.FileName,
		ExpiresDate: time.UnixMilli(r.ExpiresDate),
	}
	if r.AuthorID.Valid {
		v := r.AuthorID.String
		t.AuthorID = &v
	}
	if r.APIURL.Valid {
		v := r.APIURL.String
		t.APIURL = &v
	}
	if r.AuthorIP.Valid {
		v := r.AuthorIP.String
		t.AuthorIP = &v
	}
	if r.Latitude.Valid {
		v := r.Latitude.Float64
		t.Latitude = &v
	}
	if r.Longitude.Valid {
		v := r.Longitude.Float64
		t.Longitude = &v
	}
	return t
}

const selectTransfers = `
	SELECT transfer_id, author_id, web_url, api_url, author_ip,
	       latitude, longitude, nickname, file_name, expires_date
	FROM transfers
`

// CreateTransfer : сохраняем новый перевод
func (s *Storage) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transfers (transfer_id, author_id, web_url, api_url, author_ip,
		                       latitude, longitude, nickname, file_name, expires_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
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

// ListActiveTransfers : все неистекшие переводы
func (s *Storage) ListActiveTransfers(ctx context.Context, now time.Time) ([]*models.Transfer, error) {
	return s.selectTransfers(ctx,
		selectTransfers+` WHERE expires_date >= $1 ORDER BY expires_date ASC, transfer_id ASC`,
		now.UnixMilli())
}

// ListActiveTransfersByAuthor : неистекшие переводы одного автора
func (s *Storage) ListActiveTransfersByAuthor(ctx context.Context, authorID string, now time.Time) ([]*models.Transfer, error) {
	return s.selectTransfers(ctx,
		selectTransfers+` WHERE author_id = $1 AND expires_date >= $2 ORDER BY expires_date ASC, transfer_id ASC`,
		authorID, now.UnixMilli())
}

// ListExpiredTransferIDs : id истекших переводов
func (s *Storage) ListExpiredTransferIDs(ctx context.Context, now time.Time) ([]string, error) {
	ids := make([]string, 0)
	err := s.db.SelectContext(ctx, &ids,
		`SELECT transfer_id FROM transfers WHERE expires_date < $1 ORDER BY expires_date ASC`,
		now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query expired transfers: %w", err)
	}
	return ids, nil
}

// DeleteTransfer : удаляем перевод
func (s *Storage) DeleteTransfer(ctx context.Context, transferID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transfers WHERE transfer_id = $1`, transferID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	return expectRows(result, storage.ErrTransferNotFound)
}

func (s *Storage) selectTransfers(ctx context.Context, query string, args ...any) ([]*models.Transfer, error) {
	var rows []transferRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}

	transfers := make([]*models.Transfer, 0, len(rows))
	for _, r := range rows {
		transfers = append(transfers, r.toModel())
	}
	return transfers, nil
}
