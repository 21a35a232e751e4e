package errs

import (
	"fmt"
	"net/http"
)

// Kind classifies every failure that leaves a use case.
type Kind string

const (
	KindValidation   Kind = "VALIDATION_ERROR"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindServerConfig Kind = "SERVER_CONFIG"
	KindRateLimited  Kind = "RATE_LIMITED"
	KindInternal     Kind = "INTERNAL_ERROR"
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Details any
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause keeps the low-level error for logs; it is never rendered to clients.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func newApp(kind Kind, format string, args ...any) *AppError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &AppError{Kind: kind, Message: msg}
}

func Validation(format string, args ...any) *AppError {
	return newApp(KindValidation, format, args...)
}

func Unauthorized(format string, args ...any) *AppError {
	return newApp(KindUnauthorized, format, args...)
}

func Forbidden(format string, args ...any) *AppError {
	return newApp(KindForbidden, format, args...)
}

func NotFound(format string, args ...any) *AppError {
	return newApp(KindNotFound, format, args...)
}

func Conflict(format string, args ...any) *AppError {
	return newApp(KindConflict, format, args...)
}

func ServerConfig(format string, args ...any) *AppError {
	return newApp(KindServerConfig, format, args...)
}

func Internal(err error, format string, args ...any) *AppError {
	return newApp(KindInternal, format, args...).WithCause(err)
}

// AsApp finds the first AppError in err's chain.
func AsApp(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err, treating anything unclassified as internal.
func KindOf(err error) Kind {
	if appErr, ok := AsApp(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
