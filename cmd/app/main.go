package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chris/amc-warranty-claims/pkg/bootstrap"
	"github.com/chris/amc-warranty-claims/pkg/config"
	"github.com/chris/amc-warranty-claims/pkg/handlers"
	wshandler "github.com/chris/amc-warranty-claims/pkg/handlers/websockets"
	"github.com/chris/amc-warranty-claims/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, syncLogs, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, JSON: cfg.LogJSON})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = syncLogs() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Error("failed to wire services", "error", err)
		os.Exit(1)
	}

	deps := handlers.Deps{
		Claims:   app.Claims,
		Ledger:   app.Ledger,
		Payments: app.Payments,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   logger,
		Debug:    cfg.Debug,
	}
	if app.Hub != nil {
		deps.Websocket = wshandler.NewHandler(nil, app.Hub, logger)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handlers.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.HTTPPort, "storage", cfg.StorageBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
