package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/pressdesk/internal/config"
)

// New creates a JSON slog.Logger at the configured level.
// Unknown level names fall back to info.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stdout, cfg.LogLevel)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With(slog.String("service", "pressdesk"))
}
