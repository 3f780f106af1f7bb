package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-starwars-catalog/internal/app"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// getPlanets handles GET /planets.
func (h *Handler) getPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.services.PlanetService.GetAllPlanets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.SerializeAll(planets), http.StatusOK)
}

// getPlanet handles GET /planet/{id} and its /planets/{id} alias.
func (h *Handler) getPlanet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	planet, err := h.services.PlanetService.GetPlanet(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, planet.Serialize(), http.StatusOK)
}

// deletePlanet handles DELETE /planets/{id} and its /planet/{id} alias.
func (h *Handler) deletePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PlanetService.DeletePlanet(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.MessageResponse{Message: fmt.Sprintf(app.MsgPlanetDeleted, id)}, http.StatusOK)
}
