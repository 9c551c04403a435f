package main

import (
	"context"
	"log/slog"
	"os"

	"expensetracker/internal/auth"
	"expensetracker/internal/config"
	"expensetracker/internal/models"
	"expensetracker/internal/router"
	"expensetracker/internal/storage/sqlite"
	"expensetracker/pkg/logging"
)

func main() {
	logging.Setup()

	// Load configuration; refuses to start without a signing key.
	cfg, err := config.Load(os.Getenv("ET_CONFIG_FILE"))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	// Seed default categories before accepting traffic. Idempotent: already
	// present names are skipped.
	if err := store.SeedCategories(context.Background(), models.DefaultCategories()); err != nil {
		slog.Error("Failed to seed categories", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, auth.TokenDuration)

	r := router.Setup(cfg, store, jwtManager)

	addr := cfg.Addr()
	slog.Info("Server starting", "address", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
