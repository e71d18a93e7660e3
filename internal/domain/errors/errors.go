package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrConflict         = errors.New("conflict")
	ErrCapacityExceeded = errors.New("intake limit exceeded")

	ErrProjectNotFound    = fmt.Errorf("project %w", ErrNotFound)
	ErrMilestoneNotFound  = fmt.Errorf("milestone %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrUserExists         = fmt.Errorf("%w: user already exists with this email", ErrConflict)
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account temporarily locked")
)

// CapacityError reports a mentor's configured intake limit.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Intake limit reached. You can only guide up to %d students.", e.Limit)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// Validation wraps ErrValidation with a caller-facing message.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// InvalidStatus wraps ErrInvalidStatus with the offending value.
func InvalidStatus(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidStatus, fmt.Sprintf(format, args...))
}

// Conflict wraps ErrConflict with a caller-facing message.
func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// NotAuthorized wraps ErrNotAuthorized with the failed check.
func NotAuthorized(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotAuthorized, msg)
}
