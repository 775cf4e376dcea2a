package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pathshala/internal/buildinfo"
	"pathshala/internal/client/cli"
	"pathshala/internal/client/config"
	"pathshala/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
