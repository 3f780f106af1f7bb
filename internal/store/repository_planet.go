package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

var planetColumns = []string{
	"id", "name", "climate", "diameter", "gravity", "orbital_period",
	"population", "rotation_period", "surface_water", "terrain", "url",
}

type planetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlanetRepository constructs a [PlanetRepository] over the "planets" table.
func NewPlanetRepository(db *DB, logger *logger.Logger) PlanetRepository {
	logger.Debug().Msg("creating planet repository")
	return &planetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *planetRepository) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(planet.TableName()).
		Columns(planetColumns[1:]...).
		Values(planet.Name, planet.Climate, planet.Diameter, planet.Gravity, planet.OrbitalPeriod,
			planet.Population, planet.RotationPeriod, planet.SurfaceWater, planet.Terrain, planet.URL).
		Suffix("RETURNING " + joinColumns(planetColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.CreatePlanet").Msg("error building query")
		return models.Planet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPlanet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.CreatePlanet").Msg("error inserting planet")
		return models.Planet{}, r.db.classify(err, errorTargets{})
	}

	return created, nil
}

func (r *planetRepository) GetAllPlanets(ctx context.Context) ([]models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(planetColumns...).
		From(models.Planet{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.GetAllPlanets").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.GetAllPlanets").Msg("error querying planets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	planets := make([]models.Planet, 0)
	for rows.Next() {
		planet, err := scanPlanet(rows)
		if err != nil {
			log.Err(err).Str("func", "*planetRepository.GetAllPlanets").Msg("error scanning planet")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		planets = append(planets, planet)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*planetRepository.GetAllPlanets").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return planets, nil
}

// GetPlanetByID returns the planet with the given id or [ErrPlanetNotFound].
func (r *planetRepository) GetPlanetByID(ctx context.Context, id int64) (models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(planetColumns...).
		From(models.Planet{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.GetPlanetByID").Msg("error building query")
		return models.Planet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	planet, err := scanPlanet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*planetRepository.GetPlanetByID").Int64("id", id).Msg("error getting planet")
		}
		return models.Planet{}, r.db.classify(err, errorTargets{notFound: ErrPlanetNotFound})
	}

	return planet, nil
}

func (r *planetRepository) DeletePlanet(ctx context.Context, id int64) error {
	return r.db.deleteByID(ctx, models.Planet{}.TableName(), id, ErrPlanetNotFound)
}

func scanPlanet(row rowScanner) (models.Planet, error) {
	var p models.Planet
	err := row.Scan(&p.ID, &p.Name, &p.Climate, &p.Diameter, &p.Gravity, &p.OrbitalPeriod,
		&p.Population, &p.RotationPeriod, &p.SurfaceWater, &p.Terrain, &p.URL)
	return p, err
}
