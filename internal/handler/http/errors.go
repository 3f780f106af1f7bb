// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the handlers themselves while reading a request.
var (
	// ErrInvalidID is returned when an {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrRouteNotFound and ErrMethodNotAllowed back the router's NotFound and
	// MethodNotAllowed responses.
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
