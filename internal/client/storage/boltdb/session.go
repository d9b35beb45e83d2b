package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stendrelay/internal/client/storage"
)

// SaveSession stores the token for session.ServerURL
func (s *Storage) SaveSession(ctx context.Context, session *storage.Session) error {
	if session.ServerURL == "" {
		return fmt.Errorf("session server url is empty")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSessions).Put([]byte(session.ServerURL), data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
}

// GetSession retrieves the token stored for serverURL
func (s *Storage) GetSession(ctx context.Context, serverURL string) (*storage.Session, error) {
	var session *storage.Session

	err := s.view(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSessions).Get([]byte(serverURL))
		if data == nil {
			return storage.ErrSessionNotFound
		}
		session = &storage.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession removes the token stored for serverURL
func (s *Storage) DeleteSession(ctx context.Context, serverURL string) error {
	return s.update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSessions).Delete([]byte(serverURL)); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	})
}
