package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/service"
	"github.com/MKhiriev/go-starwars-catalog/internal/validators"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// Entity names of the catalog views.
const (
	EntityUsers     = "users"
	EntityPeople    = "people"
	EntityPlanets   = "planets"
	EntityFavorites = "favorites"
)

// NewCatalogRegistry returns a registry with a view for every catalog
// entity, backed by services.
func NewCatalogRegistry(services *service.Services) (*Registry, error) {
	reg := NewRegistry()
	validator := validators.NewRequestValidator()

	views := []ModelView{
		NewView(EntityUsers, ViewFuncs[models.User, models.CreateUserRequest]{
			List: services.UserService.GetAllUsers,
			Get:  services.UserService.GetUser,
			Create: func(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
				return services.UserService.CreateUser(ctx, req.ToUser())
			},
			Delete: services.UserService.DeleteUser,
		}, validator),
		NewView(EntityPeople, ViewFuncs[models.People, models.CreatePeopleRequest]{
			List: services.PeopleService.GetAllPeople,
			Get:  services.PeopleService.GetPeople,
			Create: func(ctx context.Context, req models.CreatePeopleRequest) (models.People, error) {
				return services.PeopleService.CreatePeople(ctx, req.ToPeople())
			},
			Delete: services.PeopleService.DeletePeople,
		}, validator),
		NewView(EntityPlanets, ViewFuncs[models.Planet, models.CreatePlanetRequest]{
			List: services.PlanetService.GetAllPlanets,
			Get:  services.PlanetService.GetPlanet,
			Create: func(ctx context.Context, req models.CreatePlanetRequest) (models.Planet, error) {
				return services.PlanetService.CreatePlanet(ctx, req.ToPlanet())
			},
			Delete: services.PlanetService.DeletePlanet,
		}, validator),
		NewView(EntityFavorites, ViewFuncs[models.Favorite, models.CreateFavoriteRequest]{
			List:   services.FavoriteService.GetAllFavorites,
			Get:    services.FavoriteService.GetFavorite,
			Create: createFavorite(services.FavoriteService),
			Delete: services.FavoriteService.DeleteFavorite,
		}, validator),
	}

	var errs []error
	for _, v := range views {
		if err := reg.Register(v); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("registering catalog views: %w", err)
	}

	return reg, nil
}

// createFavorite adds the favorite a validated request describes.
func createFavorite(favorites service.FavoriteService) func(context.Context, models.CreateFavoriteRequest) (models.Favorite, error) {
	return func(ctx context.Context, req models.CreateFavoriteRequest) (models.Favorite, error) {
		if req.PlanetID != nil {
			return favorites.AddFavorite(ctx, *req.UserID, models.FavoriteKindPlanet, *req.PlanetID)
		}
		return favorites.AddFavorite(ctx, *req.UserID, models.FavoriteKindPeople, *req.PeopleID)
	}
}
