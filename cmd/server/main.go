package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nba-draft-hub/internal/config"
	"nba-draft-hub/internal/logging"
	"nba-draft-hub/internal/server"
)

const (
	appName    = "nba-draft-hub"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. It returns only setup errors.
func run(ctx context.Context, stop context.CancelFunc) error {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: appName,
		Version: appVersion,
	})

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		return err
	}
	logging.Info(logger, "configuration loaded",
		logging.FieldProvider, cfg.Provider,
		"storage", cfg.Storage.Driver,
		"backend", cfg.Backend.BaseURL,
	)
	srv.Run(ctx, stop)
	return nil
}
