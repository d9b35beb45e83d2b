// Package logging строит slog.Logger из настроек LOG_LEVEL и LOG_FORMAT.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrInvalidLevel неизвестный уровень логирования
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel приводит строку уровня к slog.Level.
// Пустая строка означает info.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "err":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, ErrInvalidLevel
	}
}

// Options параметры логгера
type Options struct {
	Writer io.Writer // по умолчанию os.Stderr
	Level  string
	JSON   bool
}

// New создает логгер. На debug включается AddSource.
func New(opt Options) (*slog.Logger, error) {
	level, err := ParseLevel(opt.Level)
	if err != nil {
		return nil, err
	}
	w := opt.Writer
	if w == nil {
		w = os.Stderr
	}
	ho := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var h slog.Handler
	if opt.JSON {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}
	return slog.New(h), nil
}
