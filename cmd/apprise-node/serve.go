package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notifyhub/apprise-node/internal/api"
	"github.com/notifyhub/apprise-node/internal/credential"
	"github.com/notifyhub/apprise-node/internal/metrics"
	"github.com/notifyhub/apprise-node/internal/processor"
	"github.com/notifyhub/apprise-node/internal/provider"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP node host",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "HTTP port (overrides HTTP_PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// ---- configuration ----
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		cfg.HTTPPort = p
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	prov := provider.NewAppriseProvider(cfg.AppriseTimeout)
	proc := processor.New(prov, logger, m.ProcessorHooks())

	// ---- HTTP server ----
	router := api.NewRouter(api.Deps{
		Executor:      proc,
		Tester:        credential.NewTester(nil),
		Gatherer:      reg,
		DefaultDomain: cfg.AppriseDomain,
		MaxBatchSize:  cfg.MaxBatchSize,
		Logger:        logger,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in a goroutine so it does not block the shutdown listener.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("apprise_domain", cfg.AppriseDomain),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// ---- graceful shutdown ----
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("server stopped cleanly")
	return nil
}
