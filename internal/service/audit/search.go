package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

// SearchAudits returns audits whose auditor name, auditor email or location
// name contains term, newest first. An empty term lists the latest audits.
// No match yields an empty, non-nil slice.
func (s *Service) SearchAudits(ctx context.Context, term string) ([]domain.AuditSummary, error) {
	result, err := s.audits.Search(ctx, strings.TrimSpace(term), s.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search audits: %w", err)
	}
	if result == nil {
		result = []domain.AuditSummary{}
	}
	return result, nil
}

// GetAudit returns a stored audit with the details of its type.
func (s *Service) GetAudit(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "Audit id is required")
	}

	rec, err := s.audits.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get audit: %w", err)
	}

	switch rec.Audit.Type {
	case domain.AuditTypeFire:
		rec.Fire, err = s.details.GetFire(ctx, id)
	case domain.AuditTypeLadder:
		rec.Ladder, err = s.details.GetLadder(ctx, id)
	case domain.AuditTypeCustodial, domain.AuditTypeLandscaping:
		rec.Ratings, err = s.details.ListRatings(ctx, id, rec.Audit.Type)
	default:
		return nil, fmt.Errorf("get audit %s: unknown audit type %q", id, rec.Audit.Type)
	}
	// An audit whose detail write failed has no detail row; return the header.
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "audit has no details", slog.String("audit_id", id.String()))
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s details: %w", rec.Audit.Type, err)
	}

	return rec, nil
}
