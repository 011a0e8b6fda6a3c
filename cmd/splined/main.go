// SPDX-License-Identifier: MIT

// Command splined serves the spline generator over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/splinegen/internal/config"
	"github.com/katalvlaran/splinegen/internal/httpapi"
	"github.com/katalvlaran/splinegen/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("load configuration: %v", err)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	slog.Info("configuration loaded",
		"addr", cfg.HTTP.Addr,
		"max_body_bytes", cfg.HTTP.MaxBodyBytes,
		"request_timeout", cfg.HTTP.RequestTimeout,
	)

	server := httpapi.NewServer(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err = <-errCh:
		if err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if err = <-errCh; err != nil {
		slog.Error("server stopped", "error", err)
	}
	slog.Info("server stopped")
}
