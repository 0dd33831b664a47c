// Package auditor implements the Auditor repository using PostgreSQL.
package auditor

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/safety-audits/internal/adapter/postgres"
)

// Repo provides auditor persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new auditor repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Upsert inserts an auditor keyed by email or, when the email exists,
// replaces its name. Returns the auditor ID either way.
func (r *Repo) Upsert(ctx context.Context, email, name string) (uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Insert("auditors").
		Columns("email", "name").
		Values(email, name).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = now() RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "build auditor upsert")
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "upsert auditor")
	}
	return id, nil
}
