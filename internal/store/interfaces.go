package store

import (
	"context"

	"github.com/MKhiriev/go-starwars-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type PeopleRepository interface {
	CreatePeople(ctx context.Context, people models.People) (models.People, error)
	GetAllPeople(ctx context.Context) ([]models.People, error)
	GetPeopleByID(ctx context.Context, id int64) (models.People, error)
	DeletePeople(ctx context.Context, id int64) error
}

type PlanetRepository interface {
	CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error)
	GetAllPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanetByID(ctx context.Context, id int64) (models.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

type FavoriteRepository interface {
	// AddFavorite inserts fav unless the same (user, target) pair is already
	// stored, in which case ErrFavoriteAlreadyExists is returned.
	AddFavorite(ctx context.Context, fav models.Favorite) (models.Favorite, error)
	GetAllFavorites(ctx context.Context) ([]models.Favorite, error)
	GetFavoritesByUserID(ctx context.Context, userID int64) ([]models.Favorite, error)
	GetFavoriteByID(ctx context.Context, id int64) (models.Favorite, error)
	DeleteFavorite(ctx context.Context, id int64) error
}

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
