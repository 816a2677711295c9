package utils

import (
	"errors"
	"fmt"
)

var (
	ErrCatalogUnavailable = errors.New("place catalog unavailable")
	ErrEmptyAllowedSet    = errors.New("no places available for schedule generation")
	ErrInvalidInput       = errors.New("invalid input")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)

// GenerationTransportError is an IO/transport failure while talking to the
// completion endpoint. The request never produced an HTTP response.
type GenerationTransportError struct {
	Err error
}

func (e *GenerationTransportError) Error() string {
	return fmt.Sprintf("generation transport failure: %v", e.Err)
}

func (e *GenerationTransportError) Unwrap() error { return e.Err }

// GenerationRequestError is a non-success HTTP status from the completion
// endpoint. Body is kept verbatim for diagnostics.
type GenerationRequestError struct {
	StatusCode int
	Body       string
}

func (e *GenerationRequestError) Error() string {
	return fmt.Sprintf("generation request failed: HTTP %d: %s", e.StatusCode, e.Body)
}

// MalformedOutputError means the model reply was not the JSON schedule we
// asked for. Raw holds the reply verbatim; no repair is attempted.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed generation output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }
