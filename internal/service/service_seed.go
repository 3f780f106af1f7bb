package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/adapter"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
)

// seedService copies records returned by a SWAPIAdapter into the catalog.
// Records are inserted one by one; a failure stops the import and reports
// how many records were stored before it.
type seedService struct {
	swapi            adapter.SWAPIAdapter
	peopleRepository store.PeopleRepository
	planetRepository store.PlanetRepository

	logger *logger.Logger
}

func NewSeedService(swapi adapter.SWAPIAdapter, storages *store.Storages, logger *logger.Logger) (SeedService, error) {
	if swapi == nil {
		return nil, ErrNoAdapterProvided
	}

	return &seedService{
		swapi:            swapi,
		peopleRepository: storages.PeopleRepository,
		planetRepository: storages.PlanetRepository,
		logger:           logger,
	}, nil
}

func (s *seedService) SeedPeople(ctx context.Context, limit int) (int, error) {
	log := logger.FromContext(ctx)

	people, err := s.swapi.FetchPeople(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "*seedService.SeedPeople").Msg("error fetching people")
		return 0, fmt.Errorf("error fetching people: %w", err)
	}

	for i, p := range people {
		p.ID = 0
		if _, err = s.peopleRepository.CreatePeople(ctx, p); err != nil {
			log.Err(err).Str("func", "*seedService.SeedPeople").Str("name", p.Name).Msg("error storing person")
			return i, fmt.Errorf("error storing person %q: %w", p.Name, err)
		}
	}

	log.Info().Int("count", len(people)).Msg("people imported")
	return len(people), nil
}

func (s *seedService) SeedPlanets(ctx context.Context, limit int) (int, error) {
	log := logger.FromContext(ctx)

	planets, err := s.swapi.FetchPlanets(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "*seedService.SeedPlanets").Msg("error fetching planets")
		return 0, fmt.Errorf("error fetching planets: %w", err)
	}

	for i, p := range planets {
		p.ID = 0
		if _, err = s.planetRepository.CreatePlanet(ctx, p); err != nil {
			log.Err(err).Str("func", "*seedService.SeedPlanets").Str("name", p.Name).Msg("error storing planet")
			return i, fmt.Errorf("error storing planet %q: %w", p.Name, err)
		}
	}

	log.Info().Int("count", len(planets)).Msg("planets imported")
	return len(planets), nil
}
