package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/safety-audits/internal/config"
	"github.com/heartmarshall/safety-audits/internal/domain"
	"github.com/heartmarshall/safety-audits/internal/retry"
)

type auditorRepo interface {
	Upsert(ctx context.Context, email, name string) (uuid.UUID, error)
}

type locationRepo interface {
	Upsert(ctx context.Context, name string) (uuid.UUID, error)
}

type auditRepo interface {
	Create(ctx context.Context, a domain.Audit) (domain.Audit, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, term string, limit int) ([]domain.AuditSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error)
}

type detailRepo interface {
	InsertFire(ctx context.Context, auditID uuid.UUID, d *domain.FireDetails, photoURL *string) error
	InsertLadder(ctx context.Context, auditID uuid.UUID, d *domain.LadderDetails, photoURL *string) error
	InsertRatings(ctx context.Context, auditID uuid.UUID, typ domain.AuditType, ratings []domain.AreaRating) error
	GetFire(ctx context.Context, auditID uuid.UUID) (*domain.FireRecord, error)
	GetLadder(ctx context.Context, auditID uuid.UUID) (*domain.LadderRecord, error)
	ListRatings(ctx context.Context, auditID uuid.UUID, typ domain.AuditType) ([]domain.AreaRating, error)
}

type imageUploader interface {
	Upload(ctx context.Context, dataURI, folder, baseName string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service validates, persists and reads safety audits.
type Service struct {
	auditors  auditorRepo
	locations locationRepo
	audits    auditRepo
	details   detailRepo
	images    imageUploader
	tx        txManager
	log       *slog.Logger

	emailDomain string
	consistency string
	searchLimit int
	retry       retry.Policy
	now         func() time.Time
}

// NewService creates a new audit service.
func NewService(
	log *slog.Logger,
	cfg config.AuditConfig,
	auditors auditorRepo,
	locations locationRepo,
	audits auditRepo,
	details detailRepo,
	images imageUploader,
	tx txManager,
) *Service {
	policy := retry.DefaultPolicy()
	policy.MaxAttempts = cfg.RetryMaxAttempts
	policy.BaseDelay = cfg.RetryBaseDelay

	svc := &Service{
		auditors:    auditors,
		locations:   locations,
		audits:      audits,
		details:     details,
		images:      images,
		tx:          tx,
		log:         log.With("service", "audit"),
		emailDomain: cfg.CompanyEmailDomain,
		consistency: cfg.Consistency,
		searchLimit: cfg.SearchLimit,
		now:         time.Now,
	}
	svc.retry = policy.WithNotify(func(err error, wait time.Duration) {
		svc.log.Warn("retrying transient failure",
			slog.String("error", err.Error()),
			slog.Duration("wait", wait),
		)
	})
	return svc
}
