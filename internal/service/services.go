package service

import (
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
)

type Services struct {
	UserService     UserService
	PeopleService   PeopleService
	PlanetService   PlanetService
	FavoriteService FavoriteService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		UserService:     NewUserService(storages.UserRepository, logger),
		PeopleService:   NewPeopleService(storages.PeopleRepository, logger),
		PlanetService:   NewPlanetService(storages.PlanetRepository, logger),
		FavoriteService: NewFavoriteService(storages.FavoriteRepository, logger),
	}
}
