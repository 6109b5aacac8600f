// @title        CMS Console API
// @version      1.0
// @description  Admin console over users, roles, comments, moderation and content.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/99minutos/cms-console/internal/api"
	"github.com/99minutos/cms-console/internal/infrastructure/db"
	"github.com/99minutos/cms-console/internal/pkg/config"
	"github.com/99minutos/cms-console/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx := context.Background()

	store, closeStore, err := db.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}

	svc := api.NewServices(store, log, nil)

	if cfg.SeedOnStart {
		if err := svc.Seeder.Initialize(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed default data")
		}
	}

	// Users whose status is banned but who have no blacklist entry get one.
	if n, err := svc.Moderation.ReconcileBans(ctx); err != nil {
		log.Error().Err(err).Msg("ban reconciliation failed")
	} else if n > 0 {
		log.Info().Int("entries", n).Msg("blacklist reconciled with banned users")
	}

	e := api.NewRouter(svc, log, api.RouterOptions{
		StoreDriver: cfg.StoreDriver,
		RequestLog:  true,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.StoreDriver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := closeStore(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}

	log.Info().Msg("server exited")
}
