package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Truncate removes every audit, auditor and location row.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `TRUNCATE auditors, locations, audits CASCADE`)
	if err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}

// SeedAuditor inserts an auditor with a unique company email.
func SeedAuditor(t *testing.T, pool *pgxpool.Pool) domain.Auditor {
	t.Helper()

	suffix := uniqueSuffix()
	a := domain.Auditor{
		Email: "auditor-" + suffix + "@amentum.com",
		Name:  "Auditor " + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO auditors (email, name) VALUES ($1, $2) RETURNING id`,
		a.Email, a.Name,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: seed auditor: %v", err)
	}
	return a
}

// SeedLocation inserts a location with a unique name.
func SeedLocation(t *testing.T, pool *pgxpool.Pool) domain.Location {
	t.Helper()

	l := domain.Location{Name: "Site " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO locations (name) VALUES ($1) RETURNING id`, l.Name,
	).Scan(&l.ID)
	if err != nil {
		t.Fatalf("testhelper: seed location: %v", err)
	}
	return l
}

// SeedAudit inserts a base audit row of the given type for a fresh auditor
// and location.
func SeedAudit(t *testing.T, pool *pgxpool.Pool, typ domain.AuditType) domain.Audit {
	t.Helper()

	auditor := SeedAuditor(t, pool)
	location := SeedLocation(t, pool)
	a := domain.Audit{
		AuditorID:       auditor.ID,
		LocationID:      location.ID,
		Type:            typ,
		AuditDate:       time.Now().UTC().Truncate(time.Microsecond),
		Recommendations: "Keep doing what you are doing",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO audits (auditor_id, location_id, audit_type, audit_date, recommendations)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		a.AuditorID, a.LocationID, string(a.Type), a.AuditDate, a.Recommendations,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed audit: %v", err)
	}
	return a
}
