// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// probedMethods are tried against a path to build the Allow header.
var probedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// notFound is the router's NotFound handler.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, fmt.Errorf("%w: %s", ErrRouteNotFound, r.URL.Path))
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// with 405 in the common JSON error shape and lists the methods the path is
// registered for in the Allow header.
//
// The path is taken from the chi routing context when a middleware such as
// chi's StripSlashes middleware rewrote it, so the lookup sees the same path the
// router matched.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
			path = rctx.RoutePath
		}

		var allowed []string
		for _, method := range probedMethods {
			if router.Match(chi.NewRouteContext(), method, path) {
				allowed = append(allowed, method)
			}
		}
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeError(w, r, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, path))
	}
}
