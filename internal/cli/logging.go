package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newRotator creates a rotating log writer. The defaults can be overridden
// with GOCUBE_LOG_MAX_SIZE (megabytes), GOCUBE_LOG_MAX_BACKUPS and
// GOCUBE_LOG_MAX_AGE (days).
func newRotator(path string) *lumberjack.Logger {
	l := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}

	if v, ok := envInt("GOCUBE_LOG_MAX_SIZE"); ok && v > 0 {
		l.MaxSize = v
	}
	if v, ok := envInt("GOCUBE_LOG_MAX_BACKUPS"); ok && v >= 0 {
		l.MaxBackups = v
	}
	if v, ok := envInt("GOCUBE_LOG_MAX_AGE"); ok && v > 0 {
		l.MaxAge = v
	}
	return l
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// newLogger logs warnings to w, or everything when verbose is set. With a
// log file path, every record is also written to that file.
func newLogger(w io.Writer, verbose bool, path string) (*slog.Logger, io.Closer, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	console := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	if path == "" {
		return slog.New(console), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	rotator := newRotator(path)
	file := slog.NewTextHandler(rotator, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
			}
			return a
		},
	})
	return slog.New(&multiHandler{handlers: []slog.Handler{console, file}}), rotator, nil
}

// multiHandler fans out log records to multiple handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
