package main

import (
	"log/slog"
	"os"

	"github.com/bogdan892/refactoring/internal/adapter/console"
	"github.com/bogdan892/refactoring/internal/adapter/messages"
	"github.com/bogdan892/refactoring/internal/adapter/storage"
	"github.com/bogdan892/refactoring/internal/core/action"
	"github.com/bogdan892/refactoring/internal/core/config"
)

func main() {
	cfg := config.Load()

	// Logs go to stderr so they never interleave with the menu on stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cat, err := messages.Load(cfg.Locale)
	if err != nil {
		slog.Error("failed to load locale", "error", err)
		os.Exit(1)
	}

	repo, err := storage.Open(cfg)
	if err != nil {
		slog.Error("failed to open storage", "error", err, "driver", cfg.Storage)
		os.Exit(1)
	}

	act, err := action.New(repo, cat, logger)
	if err != nil {
		slog.Error("failed to load accounts", "error", err)
		os.Exit(1)
	}

	if err := console.New(act, cat, os.Stdin, os.Stdout).Run(); err != nil {
		slog.Error("session aborted", "error", err)
		os.Exit(1)
	}
}
