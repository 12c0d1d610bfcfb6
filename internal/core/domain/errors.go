package domain

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrListingNotFound = errors.New("listing not found")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many attempts")

// ErrValidation is the class sentinel for all field validation failures.
// Match with errors.Is; the concrete error carries the failing field.
var ErrValidation = errors.New("validation failed")

// ValidationError reports which input field failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return e.Field + " is required"
	}
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a required-field failure for the given field.
func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}
