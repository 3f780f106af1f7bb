package http

import (
	"net/http"

	"github.com/MKhiriev/go-starwars-catalog/models"
)

// getUsers handles GET /user.
func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.SerializeAll(users), http.StatusOK)
}

// createUser handles POST /users.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req.ToUser())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, user.Serialize(), http.StatusCreated)
}
