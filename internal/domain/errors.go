package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrDatabase      = errors.New("database error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains the field-level violations of a payload, in the
// order the rules were checked.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors, first: %s: %s", len(e.Errors), e.Errors[0].Field, e.Errors[0].Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Message returns the first violated rule's user-facing message.
func (e *ValidationError) Message() string {
	if len(e.Errors) == 0 {
		return "invalid input"
	}
	return e.Errors[0].Message
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DatabaseError is a failed backend operation carrying the SQLSTATE code.
type DatabaseError struct {
	Op   string
	Code string
	Err  error
}

func (e *DatabaseError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: [%s] %v", e.Op, e.Code, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// Is reports ErrDatabase for every DatabaseError and ErrAlreadyExists for
// unique violations.
func (e *DatabaseError) Is(target error) bool {
	switch target {
	case ErrDatabase:
		return true
	case ErrAlreadyExists:
		return e.Code == "23505"
	}
	return false
}

// IsTransient reports whether err is worth retrying: network failures,
// timeouts and database errors from the connection, resource or
// concurrency classes. Validation errors, constraint violations and context
// cancellation are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var dbErr *DatabaseError
	if errors.As(err, &dbErr) && dbErr.Code != "" {
		return isTransientCode(dbErr.Code)
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isTransientCode(code string) bool {
	switch {
	case strings.HasPrefix(code, "08"): // connection_exception
		return true
	case code == "40001", code == "40P01": // serialization_failure, deadlock_detected
		return true
	case strings.HasPrefix(code, "53"): // insufficient_resources
		return true
	case strings.HasPrefix(code, "57P"): // admin/crash shutdown, cannot_connect_now
		return true
	}
	return false
}
