// Package apperr defines the error kinds the API reports to clients and how
// each kind maps onto an HTTP status.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindExternalService
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindExternalService:
		return "external_service"
	default:
		return "unexpected"
	}
}

// FieldError is one failed check of an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified failure. Message is safe to show to clients; Err is
// the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(fields ...FieldError) *Error {
	msg := "Validation failed"
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindAuthorization, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func External(msg string, err error) *Error {
	return &Error{Kind: KindExternalService, Message: msg, Err: err}
}

func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: "Internal server error", Err: err}
}

// KindOf returns the kind of err, or KindUnexpected when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// HTTPStatus maps err onto the status code sent to the client.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
