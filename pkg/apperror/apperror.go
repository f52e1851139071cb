// Package apperror defines the closed set of error variants surfaced by the
// API. Handlers and stores return these; the response package maps them to
// HTTP statuses.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidToken       = errors.New("Invalid token")
	ErrExpiredToken       = errors.New("Token expired")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// ValidationError carries one message per missing or malformed field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation Error: %v", strings.Join(e.Fields, ", "))
}

// DuplicateKeyError names the field that violated a uniqueness constraint.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate value for field: %v", e.Field)
}

// InvalidIDError reports an identifier that could not be parsed.
type InvalidIDError struct {
	Field string
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("Invalid %v: %v", e.Field, e.Value)
}

// NotFoundError reports a missing entity by name, e.g. "Song not found".
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v not found", e.Entity)
}

// StoreUnavailableError wraps a failure to reach the document store.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return "Database service temporarily unavailable"
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
