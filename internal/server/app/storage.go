package app

import (
	"context"
	"fmt"

	"github.com/iudanet/stendrelay/internal/config"
	"github.com/iudanet/stendrelay/internal/server/storage"
	"github.com/iudanet/stendrelay/internal/server/storage/memory"
	"github.com/iudanet/stendrelay/internal/server/storage/postgres"
	"github.com/iudanet/stendrelay/internal/server/storage/sqlite"
)

// OpenStorage открывает хранилище по схеме DATABASE_URL
func OpenStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	driver, dsn, err := cfg.Database()
	if err != nil {
		return nil, err
	}

	switch driver {
	case "sqlite":
		s, err := sqlite.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDatabase, driver)
	}
}
