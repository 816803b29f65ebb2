package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mundell-fleming/internal/api"
	"mundell-fleming/internal/config"
	"mundell-fleming/internal/logger"

	"go.uber.org/zap"
)

func main() {
	settingsPath := flag.String("settings", "", "Path to settings YAML (default: configs/settings.yaml if present)")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load settings: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(settings.Log.Level, settings.Log.Format)
	defer func() { _ = log.Sync() }()

	if wd, err := os.Getwd(); err == nil {
		log.Info("working directory", zap.String("dir", wd))
	}
	if info, err := os.Stat(settings.Scenarios.Dir); err != nil || !info.IsDir() {
		log.Warn("scenario directory not found", zap.String("dir", settings.Scenarios.Dir))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, settings, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
