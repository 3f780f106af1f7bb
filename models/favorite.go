// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FavoriteKind tells which catalog entity a favorite points to.
type FavoriteKind string

const (
	FavoriteKindPlanet FavoriteKind = "planet"
	FavoriteKindPeople FavoriteKind = "people"
)

// Favorite links a user to exactly one planet or one person.
// Exactly one of PlanetID and PeopleID is non-nil.
type Favorite struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	PlanetID *int64 `json:"planets_id"`
	PeopleID *int64 `json:"people_id"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}

// NewFavorite builds an unsaved favorite of the given kind.
func NewFavorite(userID int64, kind FavoriteKind, targetID int64) Favorite {
	fav := Favorite{UserID: userID}
	switch kind {
	case FavoriteKindPlanet:
		fav.PlanetID = &targetID
	case FavoriteKindPeople:
		fav.PeopleID = &targetID
	}
	return fav
}

// Kind reports which entity the favorite references.
func (f Favorite) Kind() FavoriteKind {
	if f.PlanetID != nil {
		return FavoriteKindPlanet
	}
	return FavoriteKindPeople
}

// TargetID returns the referenced planet or person id.
func (f Favorite) TargetID() int64 {
	switch {
	case f.PlanetID != nil:
		return *f.PlanetID
	case f.PeopleID != nil:
		return *f.PeopleID
	default:
		return 0
	}
}

// Serialize returns the key-value representation of the favorite.
// The reference that is not set is emitted as null.
func (f Favorite) Serialize() map[string]any {
	out := map[string]any{
		"id":         f.ID,
		"user_id":    f.UserID,
		"planets_id": nil,
		"people_id":  nil,
	}
	if f.PlanetID != nil {
		out["planets_id"] = *f.PlanetID
	}
	if f.PeopleID != nil {
		out["people_id"] = *f.PeopleID
	}
	return out
}
