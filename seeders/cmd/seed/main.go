package main

import (
	"context"

	"go.uber.org/zap"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	applogger "gearguard/pkg/logger"
	"gearguard/seeders"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if err := seeders.Seed(context.Background(), db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("database seeded")
}
