// Package audit implements the Audit repository using PostgreSQL.
// Audits are append-only: rows are created once and only removed by
// compensation after a failed submission.
package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/safety-audits/internal/adapter/postgres"
	"github.com/heartmarshall/safety-audits/internal/domain"
)

// Repo provides audit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the base audit row and returns it with ID and CreatedAt set.
func (r *Repo) Create(ctx context.Context, a domain.Audit) (domain.Audit, error) {
	query, args, err := postgres.Builder().
		Insert("audits").
		Columns("auditor_id", "location_id", "audit_type", "audit_date",
			"observations", "recommendations", "comments", "signature").
		Values(a.AuditorID, a.LocationID, string(a.Type), a.AuditDate,
			a.Observations, a.Recommendations, a.Comments, nullIfEmpty(a.Signature)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return domain.Audit{}, postgres.MapError(err, "build audit insert")
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		return domain.Audit{}, postgres.MapError(err, "insert audit")
	}
	return a, nil
}

// Delete removes an audit; detail rows go with it via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("audits").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "build audit delete")
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "delete audit")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete audit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// summarySelect joins an audit with its auditor and location.
func summarySelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("a.id", "a.audit_type", "a.audit_date", "au.name", "au.email", "l.name").
		From("audits a").
		Join("auditors au ON au.id = a.auditor_id").
		Join("locations l ON l.id = a.location_id")
}

// Search returns audit summaries whose auditor name, auditor email or
// location name contains term, case-insensitively, newest first.
// An empty term matches every audit. The result is never nil.
func (r *Repo) Search(ctx context.Context, term string, limit int) ([]domain.AuditSummary, error) {
	sb := summarySelect().
		OrderBy("a.audit_date DESC", "a.created_at DESC").
		Limit(uint64(limit))

	if term = strings.TrimSpace(term); term != "" {
		pattern := postgres.ContainsPattern(term)
		sb = sb.Where(squirrel.Or{
			squirrel.ILike{"au.name": pattern},
			squirrel.ILike{"au.email": pattern},
			squirrel.ILike{"l.name": pattern},
		})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build audit search")
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "search audits")
	}
	defer rows.Close()

	result := make([]domain.AuditSummary, 0)
	for rows.Next() {
		var (
			s   domain.AuditSummary
			typ string
		)
		if err := rows.Scan(&s.ID, &typ, &s.AuditDate, &s.AuditorName, &s.AuditorEmail, &s.LocationName); err != nil {
			return nil, postgres.MapError(err, "scan audit summary")
		}
		s.Type = domain.AuditType(typ)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "search audits")
	}

	return result, nil
}

// GetByID returns an audit with its auditor and location. Details are
// loaded separately by the detail repository.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error) {
	query, args, err := postgres.Builder().
		Select("a.id", "a.audit_type", "a.audit_date", "a.observations", "a.recommendations",
			"a.comments", "COALESCE(a.signature, '')", "a.created_at",
			"au.id", "au.email", "au.name", "l.id", "l.name").
		From("audits a").
		Join("auditors au ON au.id = a.auditor_id").
		Join("locations l ON l.id = a.location_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build audit get")
	}

	var (
		rec domain.AuditRecord
		typ string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&rec.Audit.ID, &typ, &rec.Audit.AuditDate, &rec.Audit.Observations, &rec.Audit.Recommendations,
		&rec.Audit.Comments, &rec.Audit.Signature, &rec.Audit.CreatedAt,
		&rec.Auditor.ID, &rec.Auditor.Email, &rec.Auditor.Name,
		&rec.Location.ID, &rec.Location.Name,
	)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("get audit %s", id))
	}

	rec.Audit.Type = domain.AuditType(typ)
	rec.Audit.AuditorID = rec.Auditor.ID
	rec.Audit.LocationID = rec.Location.ID
	return &rec, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
