package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

var peopleColumns = []string{
	"id", "name", "birth_year", "eye_color", "gender", "hair_color",
	"height", "mass", "skin_color", "homeworld", "url",
}

type peopleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPeopleRepository constructs a [PeopleRepository] over the "people" table.
func NewPeopleRepository(db *DB, logger *logger.Logger) PeopleRepository {
	logger.Debug().Msg("creating people repository")
	return &peopleRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePeople inserts a person. The id of people is ignored and assigned
// by the database.
func (r *peopleRepository) CreatePeople(ctx context.Context, people models.People) (models.People, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(people.TableName()).
		Columns(peopleColumns[1:]...).
		Values(people.Name, people.BirthYear, people.EyeColor, people.Gender, people.HairColor,
			people.Height, people.Mass, people.SkinColor, people.Homeworld, people.URL).
		Suffix("RETURNING " + joinColumns(peopleColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*peopleRepository.CreatePeople").Msg("error building query")
		return models.People{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPeople(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*peopleRepository.CreatePeople").Msg("error inserting person")
		return models.People{}, r.db.classify(err, errorTargets{})
	}

	return created, nil
}

func (r *peopleRepository) GetAllPeople(ctx context.Context) ([]models.People, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(peopleColumns...).
		From(models.People{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*peopleRepository.GetAllPeople").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*peopleRepository.GetAllPeople").Msg("error querying people")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	people := make([]models.People, 0)
	for rows.Next() {
		person, err := scanPeople(rows)
		if err != nil {
			log.Err(err).Str("func", "*peopleRepository.GetAllPeople").Msg("error scanning person")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		people = append(people, person)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*peopleRepository.GetAllPeople").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return people, nil
}

// GetPeopleByID returns the person with the given id or [ErrPeopleNotFound].
func (r *peopleRepository) GetPeopleByID(ctx context.Context, id int64) (models.People, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(peopleColumns...).
		From(models.People{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*peopleRepository.GetPeopleByID").Msg("error building query")
		return models.People{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	person, err := scanPeople(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*peopleRepository.GetPeopleByID").Int64("id", id).Msg("error getting person")
		}
		return models.People{}, r.db.classify(err, errorTargets{notFound: ErrPeopleNotFound})
	}

	return person, nil
}

func (r *peopleRepository) DeletePeople(ctx context.Context, id int64) error {
	return r.db.deleteByID(ctx, models.People{}.TableName(), id, ErrPeopleNotFound)
}

func scanPeople(row rowScanner) (models.People, error) {
	var p models.People
	err := row.Scan(&p.ID, &p.Name, &p.BirthYear, &p.EyeColor, &p.Gender, &p.HairColor,
		&p.Height, &p.Mass, &p.SkinColor, &p.Homeworld, &p.URL)
	return p, err
}
