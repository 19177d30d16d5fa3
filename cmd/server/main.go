package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheuseschaves/supermarket-tracker/internal/config"
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"
	"github.com/matheuseschaves/supermarket-tracker/internal/server"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	infra.SetupLogger(cfg.Env, cfg.LogLevel)

	if cfg.BackupOnStart {
		infra.StartupBackup(cfg.DatabasePath, cfg.BackupDir)
	}

	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}

	// Graceful shutdown on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := server.Run(ctx, cfg, db)
	_ = infra.Close(db)
	if runErr != nil {
		log.Error().Err(runErr).Msg("server error")
		os.Exit(1)
	}
}
