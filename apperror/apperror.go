// Package apperror defines the error taxonomy shared by the service layer and
// the HTTP handlers. Usecases return *AppError values; handlers map them to
// status codes without inspecting message strings.
package apperror

import (
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unclassified errors.
	UnknownError ErrorType = iota
	// MissingFieldError means a required input field is absent or empty.
	MissingFieldError
	// InvalidIDError means an identifier is syntactically malformed.
	InvalidIDError
	// InvalidReferenceError means a referenced folder or tag does not resolve
	// to a record owned by the caller. Deliberately does not distinguish
	// "does not exist" from "owned by someone else".
	InvalidReferenceError
	// NotFoundError is an owner-scoped lookup miss.
	NotFoundError
	// ConflictError means a uniqueness constraint was violated.
	ConflictError
	// AuthError means the presented credential was rejected.
	AuthError
	// StoreError is a persistence-layer fault, not locally recoverable.
	StoreError
	// InternalError is a generic server-side failure.
	InternalError
)

// AppError carries a classified error with an optional wrapped cause.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case MissingFieldError, InvalidIDError, InvalidReferenceError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	case AuthError:
		return http.StatusUnauthorized
	case StoreError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

// MissingField reports a required field that was absent or empty.
func MissingField(field string) *AppError {
	return New(MissingFieldError, fmt.Sprintf("missing `%s` in request body", field), nil)
}

// InvalidID reports a malformed identifier.
func InvalidID(name string) *AppError {
	return New(InvalidIDError, fmt.Sprintf("the `%s` is not valid", name), nil)
}

// InvalidReference reports a folder or tag reference that did not resolve to a
// record owned by the caller.
func InvalidReference(message string) *AppError {
	return New(InvalidReferenceError, message, nil)
}

// NotFound carries no detail so a cross-owner miss is indistinguishable from a
// nonexistent id.
func NotFound() *AppError {
	return New(NotFoundError, "not found", nil)
}

func Conflict(message string) *AppError {
	return New(ConflictError, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(AuthError, message, nil)
}

// Store wraps a persistence fault.
func Store(message string, err error) *AppError {
	return New(StoreError, message, err)
}
