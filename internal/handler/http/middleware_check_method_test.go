// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-starwars-catalog/internal/app"
)

func newCheckMethodRouter() *chi.Mux {
	noop := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Get("/items", noop)
	r.Post("/items", noop)
	r.Delete("/items/{id}", noop)
	r.NotFound(notFound)
	r.MethodNotAllowed(CheckHTTPMethod(r))
	return r
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
		wantMsg    string
	}{
		{name: "registered method", method: http.MethodGet, path: "/items", wantStatus: http.StatusNoContent},
		{name: "unregistered method", method: http.MethodPut, path: "/items", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST", wantMsg: app.MsgMethodNotAllowed},
		{name: "parameterised route", method: http.MethodGet, path: "/items/3", wantStatus: http.StatusMethodNotAllowed, wantAllow: "DELETE", wantMsg: app.MsgMethodNotAllowed},
		{name: "trailing slash stripped", method: http.MethodPatch, path: "/items/", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST", wantMsg: app.MsgMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/nothing", wantStatus: http.StatusNotFound, wantMsg: app.MsgNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			newCheckMethodRouter().ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			if tt.wantMsg == "" {
				assert.Equal(t, tt.wantStatus, rr.Code)
				return
			}
			assertError(t, rr, tt.wantStatus, tt.wantMsg)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}
