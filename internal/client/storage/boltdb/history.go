package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stendrelay/internal/client/storage"
)

// Ключ записи: serverURL + "\x00" + transferID, чтобы записи сервера лежали рядом
func sentKey(serverURL, transferID string) []byte {
	return []byte(serverURL + "\x00" + transferID)
}

// AddSent stores a published transfer
func (s *Storage) AddSent(ctx context.Context, sent *storage.SentTransfer) error {
	if sent.ServerURL == "" || sent.TransferID == "" {
		return fmt.Errorf("sent transfer needs server url and transfer id")
	}
	data, err := json.Marshal(sent)
	if err != nil {
		return fmt.Errorf("failed to marshal sent transfer: %w", err)
	}
	return s.update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSent).Put(sentKey(sent.ServerURL, sent.TransferID), data); err != nil {
			return fmt.Errorf("failed to save sent transfer: %w", err)
		}
		return nil
	})
}

// ListSent returns transfers published to serverURL, soonest expiring first
func (s *Storage) ListSent(ctx context.Context, serverURL string) ([]storage.SentTransfer, error) {
	prefix := []byte(serverURL + "\x00")
	result := make([]storage.SentTransfer, 0)

	err := s.view(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketSent).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var sent storage.SentTransfer
			if err := json.Unmarshal(v, &sent); err != nil {
				return fmt.Errorf("failed to unmarshal sent transfer: %w", err)
			}
			result = append(result, sent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ExpiresDate < result[j].ExpiresDate
	})
	return result, nil
}

// PruneSent removes entries that expired before nowMillis
func (s *Storage) PruneSent(ctx context.Context, nowMillis int64) (int, error) {
	removed := 0
	err := s.update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSent)
		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var sent storage.SentTransfer
			if err := json.Unmarshal(v, &sent); err != nil {
				return fmt.Errorf("failed to unmarshal sent transfer: %w", err)
			}
			if sent.ExpiresDate < nowMillis {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("failed to delete sent transfer: %w", err)
			}
		}
		removed = len(stale)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
