package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-starwars-catalog/internal/admin"
	"github.com/MKhiriev/go-starwars-catalog/internal/app"
	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/mock"
	"github.com/MKhiriev/go-starwars-catalog/internal/service"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// testServices exposes the mocks behind a router built by newTestRouter.
type testServices struct {
	users     *mock.MockUserService
	people    *mock.MockPeopleService
	planets   *mock.MockPlanetService
	favorites *mock.MockFavoriteService
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServices{
		users:     mock.NewMockUserService(ctrl),
		people:    mock.NewMockPeopleService(ctrl),
		planets:   mock.NewMockPlanetService(ctrl),
		favorites: mock.NewMockFavoriteService(ctrl),
	}
	services := &service.Services{
		UserService:     ts.users,
		PeopleService:   ts.people,
		PlanetService:   ts.planets,
		FavoriteService: ts.favorites,
	}

	registry, err := admin.NewCatalogRegistry(services)
	require.NoError(t, err)

	return NewHandler(services, registry, config.Server{}, logger.Nop()).Init(), ts
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// assertError checks the status and the {"message", "status_code"} body.
func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rr.Code, "body: %s", rr.Body.String())
	body := decodeBody[map[string]any](t, rr)
	assert.Equal(t, message, body["message"])
	assert.EqualValues(t, status, body["status_code"])
}

func luke() models.People {
	return models.People{
		ID: 1, Name: "Luke Skywalker", BirthYear: "19BBY", EyeColor: "blue", Gender: "male",
		HairColor: "blond", Height: "172", Mass: "77", SkinColor: "fair",
		Homeworld: "Tatooine", URL: "https://swapi.dev/api/people/1/",
	}
}

const lukeJSON = `{"name":"Luke Skywalker","birth_year":"19BBY","eye_color":"blue","gender":"male",` +
	`"hair_color":"blond","height":"172","mass":"77","skin_color":"fair",` +
	`"homeworld":"Tatooine","url":"https://swapi.dev/api/people/1/"}`

func tatooine() models.Planet {
	return models.Planet{
		ID: 1, Name: "Tatooine", Climate: "arid", Diameter: "10465", Gravity: "1 standard",
		OrbitalPeriod: "304", Population: "200000", RotationPeriod: "23", SurfaceWater: "1",
		Terrain: "desert", URL: "https://swapi.dev/api/planets/1/",
	}
}

func ptr[T any](v T) *T {
	return &v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	reg := admin.NewRegistry()
	log := logger.Nop()

	h := NewHandler(svc, reg, config.Server{RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, reg, h.admin)
	assert.Same(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.validator)
	assert.NotNil(t, h.traceIDs)
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

func TestGetUsers(t *testing.T) {
	router, ts := newTestRouter(t)
	ts.users.EXPECT().GetAllUsers(gomock.Any()).Return([]models.User{
		{ID: 1, Email: "a@b.com", Password: "hash", IsActive: true},
		{ID: 2, Email: "c@d.com", Password: "hash", IsActive: false},
	}, nil)

	rr := doRequest(router, http.MethodGet, "/user", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	users := decodeBody[[]map[string]any](t, rr)
	require.Len(t, users, 2)
	assert.Equal(t, "a@b.com", users[0]["email"])
	assert.Equal(t, true, users[0]["is_active"])
	assert.NotContains(t, users[0], "password")
}

func TestGetUsers_Empty(t *testing.T) {
	router, ts := newTestRouter(t)
	ts.users.EXPECT().GetAllUsers(gomock.Any()).Return(nil, nil)

	rr := doRequest(router, http.MethodGet, "/user", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetUsers_StoreFailure(t *testing.T) {
	router, ts := newTestRouter(t)
	ts.users.EXPECT().GetAllUsers(gomock.Any()).
		Return(nil, fmt.Errorf("error getting users: %w", store.ErrExecutingQuery))

	rr := doRequest(router, http.MethodGet, "/user", "")

	assertError(t, rr, http.StatusInternalServerError, app.MsgInternalServerError)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServices)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "created",
			body: `{"email":"a@b.com","password":"x","is_active":true}`,
			setup: func(ts *testServices) {
				ts.users.EXPECT().
					CreateUser(gomock.Any(), models.User{Email: "a@b.com", Password: "x", IsActive: true}).
					Return(models.User{ID: 7, Email: "a@b.com", Password: "hash", IsActive: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing password",
			body:       `{"email":"a@b.com","is_active":true}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "missing field: password",
		},
		{
			name:       "malformed JSON",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidJSON,
		},
		{
			name:       "trailing data after object",
			body:       `{"email":"a@b.com","password":"x","is_active":true} trailing-garbage`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidJSON,
		},
		{
			name:       "wrong type",
			body:       `{"email":"a@b.com","password":"x","is_active":"yes"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidJSON,
		},
		{
			name:       "empty body",
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgEmptyBody,
		},
		{
			name: "duplicate email",
			body: `{"email":"a@b.com","password":"x","is_active":true}`,
			setup: func(ts *testServices) {
				ts.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgEmailAlreadyExists,
		},
		{
			name: "password rejected by service",
			body: `{"email":"a@b.com","password":"x","is_active":true}`,
			setup: func(ts *testServices) {
				ts.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ts := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(ts)
			}

			rr := doRequest(router, http.MethodPost, "/users", tt.body)

			if tt.wantStatus != http.StatusCreated {
				assertError(t, rr, tt.wantStatus, tt.wantMsg)
				return
			}
			require.Equal(t, http.StatusCreated, rr.Code)
			user := decodeBody[map[string]any](t, rr)
			assert.EqualValues(t, 7, user["id"])
			assert.Equal(t, "a@b.com", user["email"])
			assert.NotContains(t, user, "password")
		})
	}
}

// ─────────────────────────────────────────────
// people
// ─────────────────────────────────────────────

func TestGetPeople(t *testing.T) {
	router, ts := newTestRouter(t)
	ts.people.EXPECT().GetAllPeople(gomock.Any()).Return([]models.People{luke()}, nil)

	rr := doRequest(router, http.MethodGet, "/people", "")

	require.Equal(t, http.StatusOK, rr.Code)
	people := decodeBody[[]map[string]any](t, rr)
	require.Len(t, people, 1)
	assert.Equal(t, "Luke Skywalker", people[0]["name"])
}

func TestGetPerson(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, ts := newTestRouter(t)
		ts.people.EXPECT().GetPeople(gomock.Any(), int64(1)).Return(luke(), nil)

		rr := doRequest(router, http.MethodGet, "/people/1", "")

		require.Equal(t, http.StatusOK, rr.Code)
		person := decodeBody[map[string]any](t, rr)
		assert.Equal(t, "19BBY", person["birth_year"])
		assert.Equal(t, "Tatooine", person["homeworld"])
	})

	t.Run("unknown id", func(t *testing.T) {
		router, ts := newTestRouter(t)
		ts.people.EXPECT().GetPeople(gomock.Any(), int64(99)).
			Return(models.People{}, fmt.Errorf("error getting person 99: %w", store.ErrPeopleNotFound))

		rr := doRequest(router, http.MethodGet, "/people/99", "")

		assertError(t, rr, http.StatusNotFound, app.MsgPersonNotFound)
	})

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := doRequest(router, http.MethodGet, "/people/"+id, "")

			assertError(t, rr, http.StatusBadRequest, app.MsgInvalidID)
		})
	}
}

func TestCreatePeople(t *testing.T) {
	t.Run("created, body id ignored", func(t *testing.T) {
		router, ts := newTestRouter(t)
		want := luke()
		want.ID = 0
		ts.people.EXPECT().CreatePeople(gomock.Any(), want).Return(luke(), nil)

		body := strings.Replace(lukeJSON, `{`, `{"id":42,`, 1)
		rr := doRequest(router, http.MethodPost, "/people", body)

		require.Equal(t, http.StatusCreated, rr.Code)
		person := decodeBody[map[string]any](t, rr)
		assert.EqualValues(t, 1, person["id"])
		assert.Equal(t, "Luke Skywalker", person["name"])
	})

	t.Run("missing field", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/people", `{"name":"Luke Skywalker"}`)

		assertError(t, rr, http.StatusBadRequest, "missing field: birth_year")
	})
}

func TestDeletePerson(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, ts := newTestRouter(t)
		ts.people.EXPECT().DeletePeople(gomock.Any(), int64(3)).Return(nil)

		rr := doRequest(router, http.MethodDelete, "/people/3", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Person with id 3 has been deleted."}`, rr.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		router, ts := newTestRouter(t)
		ts.people.EXPECT().DeletePeople(gomock.Any(), int64(3)).
			Return(fmt.Errorf("error deleting person 3: %w", store.ErrPeopleNotFound))

		rr := doRequest(router, http.MethodDelete, "/people/3", "")

		assertError(t, rr, http.StatusNotFound, app.MsgPersonNotFound)
	})
}

// ─────────────────────────────────────────────
// planets
// ─────────────────────────────────────────────

func TestGetPlanets(t *testing.T) {
	router, ts := newTestRouter(t)
	ts.planets.EXPECT().GetAllPlanets(gomock.Any()).Return([]models.Planet{tatooine()}, nil)

	rr := doRequest(router, http.MethodGet, "/planets", "")

	require.Equal(t, http.StatusOK, rr.Code)
	planets := decodeBody[[]map[string]any](t, rr)
	require.Len(t, planets, 1)
	assert.Equal(t, "arid", planets[0]["climate"])
}

func TestGetPlanet_BothPaths(t *testing.T) {
	for _, path := range []string{"/planet/1", "/planets/1"} {
		t.Run(path, func(t *testing.T) {
			router, ts := newTestRouter(t)
			ts.planets.EXPECT().GetPlanet(gomock.Any(), int64(1)).Return(tatooine(), nil)

			rr := doRequest(router, http.MethodGet, path, "")

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "Tatooine", decodeBody[map[string]any](t, rr)["name"])
		})
	}
}

func TestGetPlanet_NotFound(t *testing.T) {
	router, ts := newTestRouter(t)
	ts.planets.EXPECT().GetPlanet(gomock.Any(), int64(5)).Return(models.Planet{}, store.ErrPlanetNotFound)

	rr := doRequest(router, http.MethodGet, "/planet/5", "")

	assertError(t, rr, http.StatusNotFound, app.MsgPlanetNotFound)
}

func TestDeletePlanet_BothPaths(t *testing.T) {
	for _, path := range []string{"/planets/2", "/planet/2"} {
		t.Run(path, func(t *testing.T) {
			router, ts := newTestRouter(t)
			ts.planets.EXPECT().DeletePlanet(gomock.Any(), int64(2)).Return(nil)

			rr := doRequest(router, http.MethodDelete, path, "")

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"message":"Planet with id 2 has been deleted."}`, rr.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// favorites
// ─────────────────────────────────────────────

func TestAddFavorite(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(ts *testServices)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "planet",
			path: "/favorites/planet/4",
			body: `{"user_id":1}`,
			setup: func(ts *testServices) {
				ts.favorites.EXPECT().AddFavorite(gomock.Any(), int64(1), models.FavoriteKindPlanet, int64(4)).
					Return(models.Favorite{ID: 9, UserID: 1, PlanetID: ptr(int64(4))}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "people",
			path: "/favorites/people/4",
			body: `{"user_id":1}`,
			setup: func(ts *testServices) {
				ts.favorites.EXPECT().AddFavorite(gomock.Any(), int64(1), models.FavoriteKindPeople, int64(4)).
					Return(models.Favorite{ID: 9, UserID: 1, PeopleID: ptr(int64(4))}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate",
			path: "/favorites/planet/4",
			body: `{"user_id":1}`,
			setup: func(ts *testServices) {
				ts.favorites.EXPECT().AddFavorite(gomock.Any(), int64(1), models.FavoriteKindPlanet, int64(4)).
					Return(models.Favorite{}, service.NewAPIError("Favorite already exists", http.StatusBadRequest).Wrap(store.ErrFavoriteAlreadyExists))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Favorite already exists",
		},
		{
			name: "unknown planet",
			path: "/favorites/planet/4",
			body: `{"user_id":1}`,
			setup: func(ts *testServices) {
				ts.favorites.EXPECT().AddFavorite(gomock.Any(), int64(1), models.FavoriteKindPlanet, int64(4)).
					Return(models.Favorite{}, fmt.Errorf("favorite creation ended with error: %w", store.ErrReferenceNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    app.MsgReferenceNotFound,
		},
		{
			name:       "missing user_id",
			path:       "/favorites/planet/4",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "missing field: user_id",
		},
		{
			name:       "non positive user_id",
			path:       "/favorites/people/4",
			body:       `{"user_id":0}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid user ID",
		},
		{
			name:       "invalid target id",
			path:       "/favorites/planet/x",
			body:       `{"user_id":1}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ts := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(ts)
			}

			rr := doRequest(router, http.MethodPost, tt.path, tt.body)

			if tt.wantStatus != http.StatusCreated {
				assertError(t, rr, tt.wantStatus, tt.wantMsg)
				return
			}
			require.Equal(t, http.StatusCreated, rr.Code)
			fav := decodeBody[map[string]any](t, rr)
			assert.EqualValues(t, 9, fav["id"])
			assert.EqualValues(t, 1, fav["user_id"])
		})
	}
}

func TestGetUserFavorites(t *testing.T) {
	favs := []models.Favorite{{ID: 1, UserID: 2, PlanetID: ptr(int64(3))}}

	t.Run("user_id from body", func(t *testing.T) {
		router, ts := newTestRouter(t)
		ts.favorites.EXPECT().GetUserFavorites(gomock.Any(), int64(2)).Return(favs, nil)

		rr := doRequest(router, http.MethodGet, "/users/favorites", `{"user_id":2}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":1,"user_id":2,"planets_id":3,"people_id":null}]`, rr.Body.String())
	})

	t.Run("user_id from query", func(t *testing.T) {
		router, ts := newTestRouter(t)
		ts.favorites.EXPECT().GetUserFavorites(gomock.Any(), int64(2)).Return(favs, nil)

		rr := doRequest(router, http.MethodGet, "/users/favorites?user_id=2", "")

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("body wins over query", func(t *testing.T) {
		router, ts := newTestRouter(t)
		ts.favorites.EXPECT().GetUserFavorites(gomock.Any(), int64(5)).Return([]models.Favorite{}, nil)

		rr := doRequest(router, http.MethodGet, "/users/favorites?user_id=2", `{"user_id":5}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("missing user_id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(router, http.MethodGet, "/users/favorites", "")

		assertError(t, rr, http.StatusBadRequest, "missing field: user_id")
	})

	t.Run("invalid query user_id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := doRequest(router, http.MethodGet, "/users/favorites?user_id=abc", "")

		assertError(t, rr, http.StatusBadRequest, `invalid user ID: "abc"`)
	})
}

// ─────────────────────────────────────────────
// error mapping
// ─────────────────────────────────────────────

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"api error kept", service.NewAPIError("teapot", http.StatusTeapot), http.StatusTeapot, "teapot"},
		{"wrapped api error", fmt.Errorf("ctx: %w", service.NewAPIError("gone", http.StatusGone)), http.StatusGone, "gone"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
		{"low level store error", fmt.Errorf("%w: driver", store.ErrScanningRows), http.StatusInternalServerError, app.MsgInternalServerError},
		{"not found", store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
		{"favorite missing", store.ErrFavoriteNotFound, http.StatusNotFound, app.MsgFavoriteNotFound},
		{"constraint", store.ErrConstraintViolation, http.StatusBadRequest, app.MsgConstraintViolation},
		{"unknown kind", fmt.Errorf("%w: %q", service.ErrUnknownFavoriteKind, "ship"), http.StatusBadRequest, `unknown favorite kind: "ship"`},
		{"unknown entity", fmt.Errorf("%w: ships", admin.ErrUnknownEntity), http.StatusNotFound, app.MsgUnknownEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toAPIError(tt.err)

			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.True(t, errors.Is(got, tt.err) || errors.Is(tt.err, got))
		})
	}
}
