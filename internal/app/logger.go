package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cours-de-latin/numerals/internal/config"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output, "text" human-readable
// output with source info. Level is one of debug, info, warn, error
// (case-insensitive); anything else means info. Output is os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
