// Package sweeper периодически удаляет истекшие переводы.
package sweeper

import (
	"context"
	"log/slog"
	"time"
)

// Purger удаляет истекшие записи и возвращает их число
type Purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// Sweeper запускает очистку сразу при старте, затем с интервалом
type Sweeper struct {
	purger   Purger
	logger   *slog.Logger
	interval time.Duration
}

// New создает Sweeper
func New(purger Purger, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		purger:   purger,
		logger:   logger,
		interval: interval,
	}
}

// Run блокируется до отмены ctx.
// Ошибка очередного прохода логируется, следующий проход выполняется по расписанию.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.InfoContext(ctx, "Expiration sweeper started", slog.Duration("interval", s.interval))

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			s.logger.Info("Expiration sweeper stopped")
			return
		}
	}
}

// sweep один проход очистки
func (s *Sweeper) sweep(ctx context.Context) {
	start := time.Now()

	deleted, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Expiration sweep failed", slog.Any("error", err))
		return
	}

	s.logger.InfoContext(ctx, "Expiration sweep finished",
		slog.Int("deleted", deleted),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
}
