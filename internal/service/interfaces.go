package service

import (
	"context"

	"github.com/MKhiriev/go-starwars-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type UserService interface {
	// CreateUser hashes the plain password of user and stores it.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type PeopleService interface {
	CreatePeople(ctx context.Context, people models.People) (models.People, error)
	GetAllPeople(ctx context.Context) ([]models.People, error)
	GetPeople(ctx context.Context, id int64) (models.People, error)
	DeletePeople(ctx context.Context, id int64) error
}

type PlanetService interface {
	CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error)
	GetAllPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

type FavoriteService interface {
	// AddFavorite stores a favorite of userID for the planet or person
	// targetID. A repeated (user, target) pair fails with a 400 *APIError.
	AddFavorite(ctx context.Context, userID int64, kind models.FavoriteKind, targetID int64) (models.Favorite, error)
	GetUserFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	GetAllFavorites(ctx context.Context) ([]models.Favorite, error)
	GetFavorite(ctx context.Context, id int64) (models.Favorite, error)
	DeleteFavorite(ctx context.Context, id int64) error
}

// SeedService imports catalog records from a SWAPI-compatible API.
// A non-positive limit imports everything the API returns.
type SeedService interface {
	SeedPeople(ctx context.Context, limit int) (int, error)
	SeedPlanets(ctx context.Context, limit int) (int, error)
}
