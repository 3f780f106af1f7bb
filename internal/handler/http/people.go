package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-starwars-catalog/internal/app"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// getPeople handles GET /people.
func (h *Handler) getPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.services.PeopleService.GetAllPeople(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.SerializeAll(people), http.StatusOK)
}

// getPerson handles GET /people/{id}.
func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	person, err := h.services.PeopleService.GetPeople(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, person.Serialize(), http.StatusOK)
}

// createPeople handles POST /people. Every attribute must be present in
// the body; the id is always generated.
func (h *Handler) createPeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreatePeopleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	person, err := h.services.PeopleService.CreatePeople(ctx, req.ToPeople())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, person.Serialize(), http.StatusCreated)
}

// deletePerson handles DELETE /people/{id}.
func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PeopleService.DeletePeople(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.MessageResponse{Message: fmt.Sprintf(app.MsgPersonDeleted, id)}, http.StatusOK)
}
