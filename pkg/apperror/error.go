package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError independently of its HTTP code.
type Kind string

const (
	KindValidation        Kind = "validation_failure"
	KindDuplicate         Kind = "duplicate_entity"
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindNotFound          Kind = "not_found"
	KindPermissionDenied  Kind = "permission_denied"
	KindUnauthorized      Kind = "unauthorized"
	KindBadRequest        Kind = "bad_request"
	KindTooManyRequests   Kind = "too_many_requests"
	KindStore             Kind = "store_error"
)

type AppError struct {
	Code    int               `json:"code"`
	Kind    Kind              `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Kind == KindStore {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Validation reports every violated field at once, keyed by wire field name.
func Validation(fields map[string]string) *AppError {
	e := New(http.StatusBadRequest, KindValidation, "Validation error", nil)
	e.Fields = fields
	return e
}

// FieldError is a shorthand for a single-field validation failure.
func FieldError(field, message string) *AppError {
	return Validation(map[string]string{field: message})
}

func Duplicate(message string) *AppError {
	return New(http.StatusConflict, KindDuplicate, message, nil)
}

func InvalidIdentifier(message string) *AppError {
	return New(http.StatusBadRequest, KindInvalidIdentifier, message, nil)
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindPermissionDenied, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, KindTooManyRequests, message, nil)
}

// Store wraps an infrastructure failure. The message is safe for clients;
// the wrapped error is only exposed outside production.
func Store(message string, err error) *AppError {
	return New(http.StatusInternalServerError, KindStore, message, err)
}

func Internal(err error) *AppError {
	return Store("Internal Server Error", err)
}

// KindOf returns the kind of the first AppError in err's chain, or "".
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Is reports whether err carries an AppError of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
