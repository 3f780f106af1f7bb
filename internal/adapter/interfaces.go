// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the catalog
// talks to.
//
// The primary abstraction is [SWAPIAdapter], which reads people and planets
// from a SWAPI-compatible REST API (https://swapi.dev by default). The only
// implementation walks the paginated list endpoints over HTTP with resty
// ([NewSWAPIAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUpstreamUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-starwars-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/swapi_adapter_mock.go -package=mock

// SWAPIAdapter fetches catalog records from a SWAPI-compatible API.
// A non-positive limit fetches every page; otherwise at most limit records
// are returned. Returned records carry no ID: SWAPI identifies them by URL.
type SWAPIAdapter interface {
	FetchPeople(ctx context.Context, limit int) ([]models.People, error)
	FetchPlanets(ctx context.Context, limit int) ([]models.Planet, error)
}
