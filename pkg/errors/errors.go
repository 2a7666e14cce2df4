package errors

import (
	"fmt"
	"net/http"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// ConstraintViolationError represents a database constraint failure,
// typically a unique-key conflict.
type ConstraintViolationError struct {
	Constraint string
	Err        error
}

// NewConstraintViolationError creates a new constraint violation error
func NewConstraintViolationError(constraint string, err error) *ConstraintViolationError {
	return &ConstraintViolationError{
		Constraint: constraint,
		Err:        err,
	}
}

// Error implements the error interface
func (e *ConstraintViolationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("constraint violation on %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("constraint violation on %s", e.Constraint)
}

// Unwrap returns the wrapped error
func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error.
// The HTTP contract does not distinguish constraint conflicts from other
// store failures, so this maps to 500 rather than 409.
func (e *ConstraintViolationError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// ConnectionError represents a failure to reach the backing store
type ConnectionError struct {
	Message string
	Err     error
}

// NewConnectionError creates a new connection error
func NewConnectionError(message string, err error) *ConnectionError {
	return &ConnectionError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *ConnectionError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser interface for errors that can provide an HTTP status code
type HTTPStatuser interface {
	HTTPStatus() int
}
