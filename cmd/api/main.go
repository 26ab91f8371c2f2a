package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/bogdan892/refactoring/internal/adapter/handler"
	"github.com/bogdan892/refactoring/internal/adapter/messages"
	"github.com/bogdan892/refactoring/internal/adapter/storage"
	"github.com/bogdan892/refactoring/internal/core/action"
	"github.com/bogdan892/refactoring/internal/core/config"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
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

	accountHandler := &handler.AccountHandler{Action: act}
	cardHandler := &handler.CardHandler{Action: act}
	transactionHandler := &handler.TransactionHandler{Action: act, Cat: cat}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	api := app.Group("/v1")
	api.Post("/accounts", accountHandler.CreateAccount)
	api.Post("/login", accountHandler.Login)
	api.Delete("/accounts", accountHandler.DestroyAccount)
	api.Get("/accounts/:login/cards", cardHandler.ListCards)
	api.Post("/cards", cardHandler.CreateCard)
	api.Delete("/cards", cardHandler.DestroyCard)
	api.Post("/deposit", transactionHandler.Deposit)
	api.Post("/withdraw", transactionHandler.Withdraw)
	api.Post("/transfer", transactionHandler.Transfer)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
