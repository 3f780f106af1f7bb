package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("resource not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrInvalidBaseURL   = errors.New("invalid SWAPI base URL")
	ErrDecodingResponse = errors.New("error decoding SWAPI response")
)
