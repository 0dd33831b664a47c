// Package location implements the Location repository using PostgreSQL.
package location

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/safety-audits/internal/adapter/postgres"
)

// Repo provides location persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new location repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Upsert inserts a location or returns the existing one whose name matches
// case-insensitively. The stored display name takes the latest casing.
func (r *Repo) Upsert(ctx context.Context, name string) (uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Insert("locations").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT ((lower(name))) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "build location upsert")
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "upsert location")
	}
	return id, nil
}
