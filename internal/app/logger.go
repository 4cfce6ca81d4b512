package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/prize2pride-backend/internal/config"
)

// Service names attached to every log record.
const (
	ServiceAPI       = "review-api"
	ServiceGenerator = "generator"
)

// NewLogger builds the process logger on stderr, tags it with service and
// installs it as the slog default so library code logging through slog
// lands in the same stream.
//
// "json" is the production format. Anything else selects text with source
// locations, which reads better when running the generator by hand.
func NewLogger(cfg config.LogConfig, service string) *slog.Logger {
	logger := newLogger(os.Stderr, cfg).With(slog.String("service", service))
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	opts.AddSource = true
	return slog.New(slog.NewTextHandler(w, opts))
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// parseLevel falls back to info for anything unrecognised.
func parseLevel(s string) slog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return slog.LevelInfo
}
