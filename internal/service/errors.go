package service

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnknownFavoriteKind = errors.New("unknown favorite kind")
	ErrNoAdapterProvided   = errors.New("no SWAPI adapter provided")
)

// APIError is an error carrying the HTTP status and message a client sees.
// Err, when set, is the underlying cause and stays reachable through
// [errors.Is] and [errors.As].
type APIError struct {
	Message    string
	StatusCode int
	Err        error
}

// NewAPIError returns an APIError with the given message and status.
// A zero status is replaced with 400.
func NewAPIError(message string, statusCode int) *APIError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &APIError{Message: message, StatusCode: statusCode}
}

// Wrap returns a copy of e with err as its cause.
func (e *APIError) Wrap(err error) *APIError {
	wrapped := *e
	wrapped.Err = err
	return &wrapped
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ToMap returns the JSON body written for the error.
func (e *APIError) ToMap() map[string]any {
	return map[string]any{
		"message":     e.Message,
		"status_code": e.StatusCode,
	}
}
