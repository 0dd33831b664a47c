package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.DatabaseError{Op: op, Code: pgErr.Code, Err: err}
	}

	// Connection-level failures carry no SQLSTATE but are still database errors.
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return &domain.DatabaseError{Op: op, Err: err}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// MapError is mapError for sibling repository packages.
func MapError(err error, op string) error {
	return mapError(err, op)
}
