// Package server assembles the Pathshala backend: database, object storage,
// services, and the HTTP endpoint, with graceful shutdown on signals.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"

	"pathshala/internal/logging"
	"pathshala/internal/server/config"
	"pathshala/internal/server/httpapi"
	"pathshala/internal/server/repositories/repomanager"
	"pathshala/internal/server/services"
	"pathshala/internal/server/storage"
)

type App struct {
	config config.Config
	logger logging.Logger
	db     *sql.DB
	router *gin.Engine
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.NewS3Service(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	userService := services.NewUserService(db, rm, cfg)
	noteService := services.NewNoteService(db, rm, store)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := httpapi.NewHandler(userService, noteService, []byte(cfg.Auth.SecretKey), logger)
	handler.RegisterRoutes(router)

	return &App{config: cfg, logger: logger, db: db, router: router}, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    app.config.Server.Addr,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Warn(ctx, "http shutdown", "error", err.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close", "error", err.Error())
	}

	return nil
}
