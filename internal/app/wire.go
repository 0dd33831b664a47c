package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/safety-audits/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/safety-audits/internal/adapter/postgres/audit"
	"github.com/heartmarshall/safety-audits/internal/adapter/postgres/auditor"
	"github.com/heartmarshall/safety-audits/internal/adapter/postgres/detail"
	"github.com/heartmarshall/safety-audits/internal/adapter/postgres/location"
	"github.com/heartmarshall/safety-audits/internal/adapter/storage"
	"github.com/heartmarshall/safety-audits/internal/config"
	"github.com/heartmarshall/safety-audits/internal/service/audit"
	"github.com/heartmarshall/safety-audits/internal/service/upload"
	"github.com/heartmarshall/safety-audits/internal/transport/middleware"
	"github.com/heartmarshall/safety-audits/internal/transport/rest"
)

// Backends holds the connections shared by the server and the CLI.
type Backends struct {
	Pool  *pgxpool.Pool
	Store *storage.Store
}

// Connect opens the database pool and the object store client.
func Connect(ctx context.Context, cfg *config.Config) (*Backends, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to object storage: %w", err)
	}

	return &Backends{Pool: pool, Store: store}, nil
}

// Close releases the database pool.
func (b *Backends) Close() {
	b.Pool.Close()
}

// NewAuditService wires the repositories, the image uploader and the
// transaction manager into an audit service.
func NewAuditService(logger *slog.Logger, cfg *config.Config, b *Backends) *audit.Service {
	return audit.NewService(
		logger,
		cfg.Audit,
		auditor.New(b.Pool),
		location.New(b.Pool),
		auditrepo.New(b.Pool),
		detail.New(b.Pool),
		upload.NewService(logger, b.Store),
		postgres.NewTxManager(b.Pool),
	)
}

// NewRouter mounts the health probes and the audit API behind the standard
// middleware chain. Only submissions are rate limited.
func NewRouter(logger *slog.Logger, cfg *config.Config, svc *audit.Service, health *rest.HealthHandler, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	rest.NewAuditHandler(svc, logger, cfg.Server.MaxBodyBytes).
		Register(mux, limiter.Limit(cfg.RateLimit.SubmitPerMinute))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
