// Command cleanup physically removes relation edges soft-deleted longer ago
// than the configured retention period. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/formabase/formabase-backend/internal/adapter/postgres"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/audit"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/relationedge"
	"github.com/formabase/formabase-backend/internal/app"
	"github.com/formabase/formabase-backend/internal/config"
	"github.com/formabase/formabase-backend/internal/service/relation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := relation.NewService(logger, relationedge.New(pool), audit.New(pool), postgres.NewTxManager(pool))

	threshold := time.Now().AddDate(0, 0, -cfg.Registry.HardDeleteRetentionDays)

	purged, err := svc.PurgeDeleted(ctx, relation.PurgeInput{Threshold: threshold})
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("purged", purged),
		slog.Time("threshold", threshold),
	)
}
