// Package app wires configuration, storage, services, and transport into a
// running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/formabase/formabase-backend/internal/adapter/postgres"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/audit"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/categorynode"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/directory"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/field"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/fieldcategory"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/record"
	"github.com/formabase/formabase-backend/internal/adapter/postgres/relationedge"
	"github.com/formabase/formabase-backend/internal/config"
	"github.com/formabase/formabase-backend/internal/service/category"
	"github.com/formabase/formabase-backend/internal/service/relation"
	"github.com/formabase/formabase-backend/internal/service/schema"
	"github.com/formabase/formabase-backend/internal/transport/middleware"
	"github.com/formabase/formabase-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, builds the services and the HTTP
// surface, and serves until ctx is cancelled. Shutdown is graceful within
// the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)

	directoryRepo := directory.New(pool)
	fieldRepo := field.New(pool)
	fieldCategoryRepo := fieldcategory.New(pool)
	nodeRepo := categorynode.New(pool)
	edgeRepo := relationedge.New(pool)
	recordRepo := record.New(pool)
	auditRepo := audit.New(pool)

	schemaSvc := schema.NewService(logger, directoryRepo, fieldRepo, fieldCategoryRepo, recordRepo, auditRepo, tx)
	categorySvc := category.NewService(logger, nodeRepo, fieldCategoryRepo, fieldRepo, auditRepo, tx)
	relationSvc := relation.NewService(logger, edgeRepo, auditRepo, tx)

	router := rest.NewRouter(
		rest.RouterDeps{
			Health:   rest.NewHealthHandler(pool, BuildVersion()),
			Schema:   rest.NewSchemaHandler(schemaSvc, logger),
			Category: rest.NewCategoryHandler(categorySvc, logger),
			Edges:    rest.NewEdgeHandler(relationSvc, logger),
			Types:    rest.NewTypesHandler(),
		},
		cfg.CORS,
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Actor,
		middleware.Logger(logger),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
