package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/safety-audits/internal/config"
	"github.com/heartmarshall/safety-audits/internal/transport/middleware"
	"github.com/heartmarshall/safety-audits/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and object storage, and serves the HTTP API until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("consistency", cfg.Audit.Consistency),
	)

	backends, err := Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer backends.Close()

	created, err := backends.Store.EnsureBucket(ctx)
	if err != nil {
		// Readiness reports the bucket as down until it exists.
		logger.Warn("ensure bucket failed",
			slog.String("bucket", backends.Store.Bucket()),
			slog.String("error", err.Error()),
		)
	} else if created {
		logger.Info("bucket created", slog.String("bucket", backends.Store.Bucket()))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	svc := NewAuditService(logger, cfg, backends)
	health := rest.NewHealthHandler(backends.Pool, backends.Store, BuildVersion())

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewRouter(logger, cfg, svc, health, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
