package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/safety-audits/internal/config"
	"github.com/heartmarshall/safety-audits/internal/domain"
	"github.com/heartmarshall/safety-audits/internal/retry"
)

// Image folders and base names inside the bucket.
const (
	folderFire         = "fire"
	folderLadder       = "ladder"
	baseMaintenanceTag = "maintenance-tag-"
	baseDefect         = "defect-"
)

// Submit validates a raw form and persists it. Validation failures are
// returned before any I/O.
func (s *Service) Submit(ctx context.Context, in Input) (uuid.UUID, error) {
	sub, err := s.Validate(in)
	if err != nil {
		return uuid.Nil, err
	}
	return s.SubmitAudit(ctx, sub)
}

// SubmitAudit persists a validated audit: auditor upsert, location upsert,
// base audit insert, image uploads, detail inserts. The first failing step
// aborts the rest. What happens to rows already written depends on the
// configured consistency mode.
func (s *Service) SubmitAudit(ctx context.Context, sub *domain.Submission) (uuid.UUID, error) {
	if err := checkSubmission(sub); err != nil {
		return uuid.Nil, err
	}

	var (
		id  uuid.UUID
		err error
	)
	if s.consistency == config.ConsistencyTransaction {
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			id, err = s.persist(ctx, sub, noRetry(s.retry))
			return err
		})
	} else {
		id, err = s.persist(ctx, sub, s.retry)
	}
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "audit submitted",
		slog.String("audit_id", id.String()),
		slog.String("audit_type", sub.Type.String()),
	)
	return id, nil
}

// checkSubmission guards the tagged union: Details must be present and match Type.
func checkSubmission(sub *domain.Submission) error {
	if sub == nil || sub.Details == nil {
		return domain.NewValidationError("details", "Audit details are required")
	}
	if !sub.Type.IsValid() || sub.Details.AuditType() != sub.Type {
		return domain.NewValidationError("type", fmt.Sprintf("Details do not match audit type %q", sub.Type.String()))
	}
	return nil
}

func (s *Service) persist(ctx context.Context, sub *domain.Submission, policy retry.Policy) (uuid.UUID, error) {
	auditorID, err := retry.Do(ctx, policy, func(ctx context.Context) (uuid.UUID, error) {
		return s.auditors.Upsert(ctx, sub.Auditor.Email, sub.Auditor.Name)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert auditor: %w", err)
	}
	s.log.DebugContext(ctx, "auditor upserted", slog.String("auditor_id", auditorID.String()))

	locationID, err := retry.Do(ctx, policy, func(ctx context.Context) (uuid.UUID, error) {
		return s.locations.Upsert(ctx, sub.LocationName)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert location: %w", err)
	}
	s.log.DebugContext(ctx, "location upserted", slog.String("location_id", locationID.String()))

	audit, err := s.audits.Create(ctx, domain.Audit{
		AuditorID:       auditorID,
		LocationID:      locationID,
		Type:            sub.Type,
		AuditDate:       sub.AuditDate,
		Observations:    sub.Observations,
		Recommendations: sub.Recommendations,
		Comments:        comments(sub.Details),
		Signature:       sub.Signature,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert audit: %w", err)
	}
	s.log.DebugContext(ctx, "audit inserted", slog.String("audit_id", audit.ID.String()))

	uploaded, err := s.persistDetails(ctx, audit.ID, sub.Details, policy)
	if err != nil {
		if s.consistency == config.ConsistencyCompensate {
			s.compensate(ctx, audit.ID, uploaded)
		}
		return uuid.Nil, err
	}

	return audit.ID, nil
}

// persistDetails uploads the images of the audit and writes its detail rows.
// It returns the URLs uploaded so far, also on failure.
func (s *Service) persistDetails(ctx context.Context, auditID uuid.UUID, details domain.Details, policy retry.Policy) ([]string, error) {
	var uploaded []string

	switch d := details.(type) {
	case *domain.FireDetails:
		url, err := s.uploadImage(ctx, policy, d.MaintenanceTagPhoto, folderFire, baseMaintenanceTag+auditID.String())
		if err != nil {
			return uploaded, fmt.Errorf("upload maintenance tag photo: %w", err)
		}
		if url != nil {
			uploaded = append(uploaded, *url)
		}
		if err := s.details.InsertFire(ctx, auditID, d, url); err != nil {
			return uploaded, fmt.Errorf("insert fire details: %w", err)
		}

	case *domain.LadderDetails:
		url, err := s.uploadImage(ctx, policy, d.DefectPhoto, folderLadder, baseDefect+auditID.String())
		if err != nil {
			return uploaded, fmt.Errorf("upload defect photo: %w", err)
		}
		if url != nil {
			uploaded = append(uploaded, *url)
		}
		if err := s.details.InsertLadder(ctx, auditID, d, url); err != nil {
			return uploaded, fmt.Errorf("insert ladder details: %w", err)
		}

	case *domain.CustodialDetails:
		if err := s.details.InsertRatings(ctx, auditID, domain.AuditTypeCustodial, s.stamp(d.Ratings)); err != nil {
			return uploaded, fmt.Errorf("insert custodial ratings: %w", err)
		}

	case *domain.LandscapingDetails:
		if err := s.details.InsertRatings(ctx, auditID, domain.AuditTypeLandscaping, s.stamp(d.Ratings)); err != nil {
			return uploaded, fmt.Errorf("insert landscaping ratings: %w", err)
		}

	default:
		return uploaded, domain.NewValidationError("details", fmt.Sprintf("unsupported audit details %T", details))
	}

	s.log.DebugContext(ctx, "audit details inserted", slog.String("audit_id", auditID.String()))
	return uploaded, nil
}

// uploadImage stores an optional data URI. An empty URI yields a nil URL.
func (s *Service) uploadImage(ctx context.Context, policy retry.Policy, dataURI, folder, baseName string) (*string, error) {
	if dataURI == "" {
		return nil, nil
	}
	url, err := retry.Do(ctx, policy, func(ctx context.Context) (string, error) {
		return s.images.Upload(ctx, dataURI, folder, baseName)
	})
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// compensate removes what a failed submission left behind. Errors are
// logged, never returned: the caller reports the original failure.
func (s *Service) compensate(ctx context.Context, auditID uuid.UUID, uploaded []string) {
	ctx = context.WithoutCancel(ctx)

	if err := s.audits.Delete(ctx, auditID); err != nil {
		s.log.ErrorContext(ctx, "compensation: delete audit failed",
			slog.String("audit_id", auditID.String()),
			slog.String("error", err.Error()),
		)
	}
	for _, url := range uploaded {
		if err := s.images.Delete(ctx, url); err != nil {
			s.log.ErrorContext(ctx, "compensation: delete image failed",
				slog.String("url", url),
				slog.String("error", err.Error()),
			)
		}
	}
	s.log.WarnContext(ctx, "submission rolled back", slog.String("audit_id", auditID.String()))
}

// stamp sets the insertion time on area ratings.
func (s *Service) stamp(ratings []domain.AreaRating) []domain.AreaRating {
	now := s.now().UTC()
	out := make([]domain.AreaRating, len(ratings))
	for i, r := range ratings {
		r.CreatedAt = now
		out[i] = r
	}
	return out
}

func comments(d domain.Details) string {
	switch d := d.(type) {
	case *domain.CustodialDetails:
		return d.Comments
	case *domain.LandscapingDetails:
		return d.Comments
	}
	return ""
}

func noRetry(p retry.Policy) retry.Policy {
	p.MaxAttempts = 1
	return p
}
