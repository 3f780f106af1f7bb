package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

type peopleService struct {
	peopleRepository store.PeopleRepository
	logger           *logger.Logger
}

func NewPeopleService(peopleRepository store.PeopleRepository, logger *logger.Logger) PeopleService {
	return &peopleService{
		peopleRepository: peopleRepository,
		logger:           logger,
	}
}

// CreatePeople stores people under a newly generated id; people.ID is ignored.
func (s *peopleService) CreatePeople(ctx context.Context, people models.People) (models.People, error) {
	people.ID = 0

	created, err := s.peopleRepository.CreatePeople(ctx, people)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", people.Name).Msg("person creation ended with error")
		return models.People{}, fmt.Errorf("person creation ended with error: %w", err)
	}
	return created, nil
}

func (s *peopleService) GetAllPeople(ctx context.Context) ([]models.People, error) {
	people, err := s.peopleRepository.GetAllPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting people: %w", err)
	}
	return people, nil
}

func (s *peopleService) GetPeople(ctx context.Context, id int64) (models.People, error) {
	people, err := s.peopleRepository.GetPeopleByID(ctx, id)
	if err != nil {
		return models.People{}, fmt.Errorf("error getting person %d: %w", id, err)
	}
	return people, nil
}

func (s *peopleService) DeletePeople(ctx context.Context, id int64) error {
	if err := s.peopleRepository.DeletePeople(ctx, id); err != nil {
		return fmt.Errorf("error deleting person %d: %w", id, err)
	}
	logger.FromContext(ctx).Info().Int64("people_id", id).Msg("person deleted")
	return nil
}
