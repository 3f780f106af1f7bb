package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/utils"
)

// idParam is the name of the numeric path parameter of every item route.
const idParam = "id"

// parseID returns the positive integer {id} path parameter.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, idParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// readJSON decodes the request body into dst. An empty body yields
// utils.ErrEmptyBody, anything else that cannot be decoded ErrInvalidJSON.
func readJSON(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

// respond writes data as JSON with status.
func respond(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "respond").Msg("error writing response")
	}
}
