// Package log builds the slog logger used by the arctext command.
//
// Records go to the console writer as text or JSON. When a file is configured they
// are also written as JSON to a size-rotated log file.
// Values can be provided directly or via environment variables:
//   - ARCTEXT_LOG_LEVEL=debug|info|warn|error
//   - ARCTEXT_LOG_FORMAT=text|json
//   - ARCTEXT_LOG_FILE=<path>
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string
	Format string // "text" or "json"
	File   string // optional path for rotated JSON logs
}

// Environment variable names read by FromEnv.
const (
	EnvLevel  = "ARCTEXT_LOG_LEVEL"
	EnvFormat = "ARCTEXT_LOG_FORMAT"
	EnvFile   = "ARCTEXT_LOG_FILE"
)

// FromEnv builds Options from environment variables.
func FromEnv() Options {
	return Options{
		Level:  getenv(EnvLevel, "warn"),
		Format: getenv(EnvFormat, "text"),
		File:   os.Getenv(EnvFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// New returns a logger for opts writing to console, and a closer that
// releases the log file if one was opened.
func New(opts Options, console io.Writer) (*slog.Logger, io.Closer) {
	ho := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handlers []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handlers = append(handlers, slog.NewJSONHandler(console, ho))
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, ho))
	}

	var closer io.Closer = nopCloser{}
	if f := strings.TrimSpace(opts.File); f != "" {
		w := &lj.Logger{Filename: f, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(w, ho))
		closer = w
	}

	h := handlers[0]
	if len(handlers) > 1 {
		h = &multi{hs: handlers}
	}
	return slog.New(h), closer
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multi fans out log records to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
