// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-starwars-catalog/internal/utils"
	"github.com/MKhiriev/go-starwars-catalog/internal/validators"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// addFavorite returns the handler of POST /favorites/{kind}/{id}. The user
// is taken from the "user_id" key of the body.
func (h *Handler) addFavorite(kind models.FavoriteKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		targetID, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.UserIDRequest
		if err = readJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err = h.validator.Validate(ctx, req); err != nil {
			writeError(w, r, err)
			return
		}

		fav, err := h.services.FavoriteService.AddFavorite(ctx, *req.UserID, kind, targetID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		respond(w, r, fav.Serialize(), http.StatusCreated)
	}
}

// getUserFavorites handles GET /users/favorites.
func (h *Handler) getUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	favs, err := h.services.FavoriteService.GetUserFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.SerializeAll(favs), http.StatusOK)
}

// userIDFromRequest reads "user_id" from the JSON body, falling back to the
// user_id query parameter when the body is empty or lacks the key.
func (h *Handler) userIDFromRequest(r *http.Request) (int64, error) {
	var req models.UserIDRequest
	if err := readJSON(r, &req); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		return 0, err
	}

	if req.UserID == nil {
		if raw := r.URL.Query().Get(validators.FieldUserID); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", validators.ErrInvalidUserID, raw)
			}
			req.UserID = &id
		}
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		return 0, err
	}
	return *req.UserID, nil
}
