// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"postboard/config"
	"postboard/internal/domain/lifecycle"
	logs "postboard/internal/infra/log"
	"postboard/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build migration app", slog.Any("error", err))

		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		logger.Error("Failed to connect to database", slog.Any("error", err))

		return 1
	}

	exitCode := 0
	if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("Database schema is up to date")
	}

	if err := app.Stop(ctx); err != nil {
		logger.Warn("Failed to close database", slog.Any("error", err))
	}

	return exitCode
}
