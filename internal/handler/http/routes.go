package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-starwars-catalog/models"
)

// compressLevel is the gzip level of compressed JSON responses.
const compressLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(compressLevel, "application/json", "text/html"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", sitemap(router))

	// users
	router.Get("/user", h.getUsers)
	router.Post("/users", h.createUser)
	router.Get("/users/favorites", h.getUserFavorites)

	// people
	router.Get("/people", h.getPeople)
	router.Post("/people", h.createPeople)
	router.Get("/people/{id}", h.getPerson)
	router.Delete("/people/{id}", h.deletePerson)

	// planets; both spellings of the item path are served
	router.Get("/planets", h.getPlanets)
	router.Get("/planet/{id}", h.getPlanet)
	router.Get("/planets/{id}", h.getPlanet)
	router.Delete("/planets/{id}", h.deletePlanet)
	router.Delete("/planet/{id}", h.deletePlanet)

	// favorites
	router.Post("/favorites/planet/{id}", h.addFavorite(models.FavoriteKindPlanet))
	router.Post("/favorites/people/{id}", h.addFavorite(models.FavoriteKindPeople))

	// admin panel
	router.Get(adminPrefix, h.adminIndex)
	router.Get(adminPrefix+"/{entity}", h.adminList)
	router.Post(adminPrefix+"/{entity}", h.adminCreate)
	router.Get(adminPrefix+"/{entity}/{id}", h.adminGet)
	router.Delete(adminPrefix+"/{entity}/{id}", h.adminDelete)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
