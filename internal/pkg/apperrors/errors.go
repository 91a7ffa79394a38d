package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Subject errors
var (
	ErrSubjectNotFound = errors.New("subject not found")
)

// Mapping errors
var (
	ErrFacultyNotFound    = errors.New("faculty not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrMappingNotFound    = errors.New("mapping not found")
	ErrSubjectNotAssigned = errors.New("subject not assigned to faculty")
)

// CustomError carries a human-readable message alongside a sentinel error
// so handlers can match with errors.Is while responses keep the message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewSubjectTripleNotFoundError reports a (subject, standard, board) triple
// that could not be resolved to a subject row.
func NewSubjectTripleNotFoundError(subject string, standard int, board string) error {
	return &CustomError{
		Err:     ErrSubjectNotFound,
		Message: fmt.Sprintf("The subject %q with standard %d and board %s does not exist in our database.", subject, standard, board),
	}
}

// Message returns the CustomError message when err wraps one, or the fallback.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
