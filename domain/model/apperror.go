package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel categories for the application error taxonomy. Handlers map these
// to HTTP status codes; everything else surfaces as 500.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// AppError carries a taxonomy category, a caller-facing message and the
// underlying cause.
type AppError struct {
	Kind    error
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
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is lets errors.Is match an AppError against its sentinel category.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Kind, target) || (e.Err != nil && errors.Is(e.Err, target))
}

func BadRequest(message string) *AppError {
	return &AppError{Kind: ErrBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: ErrUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: ErrForbidden, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: ErrConflict, Message: message}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: ErrInternal, Message: message, Err: err}
}

// StatusCode resolves an error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
