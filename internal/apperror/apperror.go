// Package apperror carries the error taxonomy shared by every operation.
// Errors are plain values tagged with a Kind; the HTTP boundary maps the
// kind to a status code and renders the response envelope.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	Unknown Kind = iota
	Validation
	Unauthorized
	Forbidden
	NotFound
	UserExists
	Database
)

// Error is the tagged error type propagated through each operation.
// Err wraps the underlying cause for server-side logs; only Message is
// ever rendered to a client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case UserExists:
		return http.StatusUnprocessableEntity
	case Database:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// New returns an Error with the given kind and client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap is New with an underlying cause attached.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or Unknown if err carries no *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

// FromStatus is the inverse of StatusCode, used by clients to recover
// the kind from a response status.
func FromStatus(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return Validation
	case http.StatusUnauthorized:
		return Unauthorized
	case http.StatusForbidden:
		return Forbidden
	case http.StatusNotFound:
		return NotFound
	case http.StatusUnprocessableEntity:
		return UserExists
	case http.StatusInternalServerError:
		return Database
	default:
		return Unknown
	}
}

// IsNotFound reports whether err is tagged NotFound.
func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}

// IsUserExists reports whether err is tagged UserExists.
func IsUserExists(err error) bool {
	return KindOf(err) == UserExists
}
