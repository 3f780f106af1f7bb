package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-starwars-catalog/internal/admin"
	"github.com/MKhiriev/go-starwars-catalog/internal/app"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

const (
	adminPrefix = "/admin"
	entityParam = "entity"
)

// adminEntity is one entry of the admin index.
type adminEntity struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// adminIndex handles GET /admin and lists the registered entities.
func (h *Handler) adminIndex(w http.ResponseWriter, r *http.Request) {
	names := h.admin.Names()
	entities := make([]adminEntity, 0, len(names))
	for _, name := range names {
		entities = append(entities, adminEntity{Name: name, URL: adminPrefix + "/" + name})
	}

	respond(w, r, map[string]any{"entities": entities}, http.StatusOK)
}

func (h *Handler) adminList(w http.ResponseWriter, r *http.Request) {
	view, err := h.adminView(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := view.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, records, http.StatusOK)
}

func (h *Handler) adminGet(w http.ResponseWriter, r *http.Request) {
	view, id, err := h.adminViewAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := view.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, record, http.StatusOK)
}

// adminCreate handles POST /admin/{entity}. The body carries the same keys
// as the matching public create request.
func (h *Handler) adminCreate(w http.ResponseWriter, r *http.Request) {
	view, err := h.adminView(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := view.Create(r.Context(), http.MaxBytesReader(w, r.Body, maxAdminBodySize))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, record, http.StatusCreated)
}

func (h *Handler) adminDelete(w http.ResponseWriter, r *http.Request) {
	view, id, err := h.adminViewAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = view.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.MessageResponse{Message: fmt.Sprintf(app.MsgRecordDeleted, view.Name(), id)}, http.StatusOK)
}

const maxAdminBodySize = 1 << 20

func (h *Handler) adminView(r *http.Request) (admin.ModelView, error) {
	return h.admin.View(chi.URLParam(r, entityParam))
}

func (h *Handler) adminViewAndID(r *http.Request) (admin.ModelView, int64, error) {
	view, err := h.adminView(r)
	if err != nil {
		return nil, 0, err
	}
	id, err := parseID(r)
	if err != nil {
		return nil, 0, err
	}
	return view, id, nil
}
