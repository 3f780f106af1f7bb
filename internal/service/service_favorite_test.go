// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/mock"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

func newTestFavoriteSvc(t *testing.T) (FavoriteService, *mock.MockFavoriteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFavoriteRepository(ctrl)
	return NewFavoriteService(repo, logger.Nop()), repo
}

func TestFavoriteService_AddFavorite_Planet(t *testing.T) {
	svc, repo := newTestFavoriteSvc(t)

	repo.EXPECT().AddFavorite(gomock.Any(), models.NewFavorite(1, models.FavoriteKindPlanet, 2)).
		DoAndReturn(func(_ context.Context, fav models.Favorite) (models.Favorite, error) {
			fav.ID = 7
			return fav, nil
		})

	fav, err := svc.AddFavorite(context.Background(), 1, models.FavoriteKindPlanet, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), fav.ID)
	assert.Equal(t, models.FavoriteKindPlanet, fav.Kind())
	assert.Nil(t, fav.PeopleID)
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	svc, repo := newTestFavoriteSvc(t)

	repo.EXPECT().AddFavorite(gomock.Any(), gomock.Any()).Return(models.Favorite{}, store.ErrFavoriteAlreadyExists)

	_, err := svc.AddFavorite(context.Background(), 1, models.FavoriteKindPeople, 2)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Favorite already exists", apiErr.Message)
	assert.ErrorIs(t, err, store.ErrFavoriteAlreadyExists)
}

func TestFavoriteService_AddFavorite_UnknownReference(t *testing.T) {
	svc, repo := newTestFavoriteSvc(t)

	repo.EXPECT().AddFavorite(gomock.Any(), gomock.Any()).Return(models.Favorite{}, store.ErrReferenceNotFound)

	_, err := svc.AddFavorite(context.Background(), 1, models.FavoriteKindPeople, 2)
	assert.ErrorIs(t, err, store.ErrReferenceNotFound)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestFavoriteService_AddFavorite_UnknownKind(t *testing.T) {
	svc, _ := newTestFavoriteSvc(t)

	_, err := svc.AddFavorite(context.Background(), 1, models.FavoriteKind("starship"), 2)
	assert.ErrorIs(t, err, ErrUnknownFavoriteKind)
}

func TestFavoriteService_Reads(t *testing.T) {
	svc, repo := newTestFavoriteSvc(t)
	ctx := context.Background()

	planetID := int64(2)
	favs := []models.Favorite{{ID: 1, UserID: 3, PlanetID: &planetID}}

	repo.EXPECT().GetFavoritesByUserID(ctx, int64(3)).Return(favs, nil)
	repo.EXPECT().GetAllFavorites(ctx).Return(favs, nil)
	repo.EXPECT().GetFavoriteByID(ctx, int64(1)).Return(favs[0], nil)
	repo.EXPECT().DeleteFavorite(ctx, int64(1)).Return(store.ErrFavoriteNotFound)

	got, err := svc.GetUserFavorites(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, favs, got)

	got, err = svc.GetAllFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	fav, err := svc.GetFavorite(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fav.TargetID())

	assert.ErrorIs(t, svc.DeleteFavorite(ctx, 1), store.ErrFavoriteNotFound)
}

func TestAPIError(t *testing.T) {
	err := NewAPIError("boom", 0)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, map[string]any{"message": "boom", "status_code": http.StatusBadRequest}, err.ToMap())

	cause := errors.New("cause")
	wrapped := err.Wrap(cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, err.Err)
}
