package cmd

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// newLogger fans out to stderr and, when available, the systemd journal.
// Journal setup failing (not on systemd, no socket) is not fatal.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}
	if journal, err := slogjournal.NewHandler(&slogjournal.Options{}); err == nil {
		handlers = append(handlers, journal)
	}
	return slog.New(slogmulti.Fanout(handlers...))
}
