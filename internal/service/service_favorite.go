// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// errFavoriteExists is the client-facing form of store.ErrFavoriteAlreadyExists.
var errFavoriteExists = NewAPIError("Favorite already exists", http.StatusBadRequest)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	logger             *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// AddFavorite builds the favorite for kind and stores it. The repository
// performs the duplicate check and the insert in one transaction.
func (s *favoriteService) AddFavorite(ctx context.Context, userID int64, kind models.FavoriteKind, targetID int64) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	if kind != models.FavoriteKindPlanet && kind != models.FavoriteKindPeople {
		return models.Favorite{}, fmt.Errorf("%w: %q", ErrUnknownFavoriteKind, kind)
	}

	fav, err := s.favoriteRepository.AddFavorite(ctx, models.NewFavorite(userID, kind, targetID))
	if errors.Is(err, store.ErrFavoriteAlreadyExists) {
		log.Info().Int64("user_id", userID).Str("kind", string(kind)).Int64("target_id", targetID).Msg("favorite already exists")
		return models.Favorite{}, errFavoriteExists.Wrap(err)
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("kind", string(kind)).Int64("target_id", targetID).Msg("favorite creation ended with error")
		return models.Favorite{}, fmt.Errorf("favorite creation ended with error: %w", err)
	}

	return fav, nil
}

// GetUserFavorites returns the favorites of userID. An unknown user has no
// favorites and yields an empty slice.
func (s *favoriteService) GetUserFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favs, err := s.favoriteRepository.GetFavoritesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting favorites of user %d: %w", userID, err)
	}
	return favs, nil
}

func (s *favoriteService) GetAllFavorites(ctx context.Context) ([]models.Favorite, error) {
	favs, err := s.favoriteRepository.GetAllFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting favorites: %w", err)
	}
	return favs, nil
}

func (s *favoriteService) GetFavorite(ctx context.Context, id int64) (models.Favorite, error) {
	fav, err := s.favoriteRepository.GetFavoriteByID(ctx, id)
	if err != nil {
		return models.Favorite{}, fmt.Errorf("error getting favorite %d: %w", id, err)
	}
	return fav, nil
}

func (s *favoriteService) DeleteFavorite(ctx context.Context, id int64) error {
	if err := s.favoriteRepository.DeleteFavorite(ctx, id); err != nil {
		return fmt.Errorf("error deleting favorite %d: %w", id, err)
	}
	return nil
}
