package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
)

// Storages groups the repositories of the catalog around one shared
// connection pool.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	PeopleRepository   PeopleRepository
	PlanetRepository   PlanetRepository
	FavoriteRepository FavoriteRepository
}

// NewStorages connects to the configured database, applies the schema
// migrations and builds every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		PeopleRepository:   NewPeopleRepository(db, log),
		PlanetRepository:   NewPlanetRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
