package domain

import (
	"strings"
)

// NormalizeEmail trims and lower-cases an email so the same mailbox always
// maps to the same auditor row.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName prepares a natural-key name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved for display; uniqueness is enforced case-insensitively
// by the database.
func NormalizeName(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
