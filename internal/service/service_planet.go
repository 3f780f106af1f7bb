package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

type planetService struct {
	planetRepository store.PlanetRepository
	logger           *logger.Logger
}

func NewPlanetService(planetRepository store.PlanetRepository, logger *logger.Logger) PlanetService {
	return &planetService{
		planetRepository: planetRepository,
		logger:           logger,
	}
}

func (s *planetService) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	planet.ID = 0

	created, err := s.planetRepository.CreatePlanet(ctx, planet)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", planet.Name).Msg("planet creation ended with error")
		return models.Planet{}, fmt.Errorf("planet creation ended with error: %w", err)
	}
	return created, nil
}

func (s *planetService) GetAllPlanets(ctx context.Context) ([]models.Planet, error) {
	planets, err := s.planetRepository.GetAllPlanets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting planets: %w", err)
	}
	return planets, nil
}

func (s *planetService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	planet, err := s.planetRepository.GetPlanetByID(ctx, id)
	if err != nil {
		return models.Planet{}, fmt.Errorf("error getting planet %d: %w", id, err)
	}
	return planet, nil
}

func (s *planetService) DeletePlanet(ctx context.Context, id int64) error {
	if err := s.planetRepository.DeletePlanet(ctx, id); err != nil {
		return fmt.Errorf("error deleting planet %d: %w", id, err)
	}
	logger.FromContext(ctx).Info().Int64("planet_id", id).Msg("planet deleted")
	return nil
}
