// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/migrations"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

var favoriteColumns = []string{"id", "user_id", "planets_id", "people_id"}

// lockUserFavoritesStatement serializes AddFavorite transactions of one user
// on PostgreSQL until commit. SQLite runs on a single connection and needs
// no lock.
const lockUserFavoritesStatement = "SELECT pg_advisory_xact_lock($1)"

// favoriteRepository is the SQL implementation of [FavoriteRepository].
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoriteRepository constructs a [FavoriteRepository] over the
// "favorites" table.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// AddFavorite checks for an existing (user, target) pair and inserts fav in
// the same transaction. On PostgreSQL the transaction first takes an
// advisory lock on the user id, so concurrent requests for the same user
// run one after another at the default isolation level.
//
// Error handling:
//   - pair already stored → [ErrFavoriteAlreadyExists].
//   - unknown user, planet or person → [ErrReferenceNotFound].
//   - neither or both targets set → [ErrConstraintViolation].
func (r *favoriteRepository) AddFavorite(ctx context.Context, fav models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	targetColumn := "people_id"
	if fav.Kind() == models.FavoriteKindPlanet {
		targetColumn = "planets_id"
	}

	countQuery, countArgs, err := r.db.builder.
		Select("COUNT(*)").
		From(fav.TableName()).
		Where(sq.Eq{"user_id": fav.UserID, targetColumn: fav.TargetID()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error building count query")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := r.db.builder.
		Insert(fav.TableName()).
		Columns(favoriteColumns[1:]...).
		Values(fav.UserID, nullableID(fav.PlanetID), nullableID(fav.PeopleID)).
		Suffix("RETURNING " + joinColumns(favoriteColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error building insert query")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error beginning transaction")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if r.db.Dialect() == migrations.DialectPostgres {
		if _, err = tx.ExecContext(ctx, lockUserFavoritesStatement, fav.UserID); err != nil {
			log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Int64("user_id", fav.UserID).Msg("error locking user favorites")
			return models.Favorite{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var existing int
	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&existing); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error counting favorites")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if existing > 0 {
		log.Debug().Str("func", "*favoriteRepository.AddFavorite").
			Int64("user_id", fav.UserID).
			Str(targetColumn, fmt.Sprint(fav.TargetID())).
			Msg("favorite already exists")
		return models.Favorite{}, ErrFavoriteAlreadyExists
	}

	created, err := scanFavorite(tx.QueryRowContext(ctx, insertQuery, insertArgs...))
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error inserting favorite")
		return models.Favorite{}, r.db.classify(err, errorTargets{})
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error committing transaction")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

func (r *favoriteRepository) GetAllFavorites(ctx context.Context) ([]models.Favorite, error) {
	return r.list(ctx, "*favoriteRepository.GetAllFavorites", nil)
}

// GetFavoritesByUserID returns the favorites owned by userID. An unknown
// user yields an empty slice.
func (r *favoriteRepository) GetFavoritesByUserID(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return r.list(ctx, "*favoriteRepository.GetFavoritesByUserID", sq.Eq{"user_id": userID})
}

func (r *favoriteRepository) GetFavoriteByID(ctx context.Context, id int64) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(favoriteColumns...).
		From(models.Favorite{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.GetFavoriteByID").Msg("error building query")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	fav, err := scanFavorite(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*favoriteRepository.GetFavoriteByID").Int64("id", id).Msg("error getting favorite")
		}
		return models.Favorite{}, r.db.classify(err, errorTargets{notFound: ErrFavoriteNotFound})
	}

	return fav, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, id int64) error {
	return r.db.deleteByID(ctx, models.Favorite{}.TableName(), id, ErrFavoriteNotFound)
}

func (r *favoriteRepository) list(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(favoriteColumns...).
		From(models.Favorite{}.TableName()).
		OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning favorite")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		favorites = append(favorites, fav)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

func scanFavorite(row rowScanner) (models.Favorite, error) {
	var (
		fav      models.Favorite
		planetID sql.NullInt64
		peopleID sql.NullInt64
	)
	if err := row.Scan(&fav.ID, &fav.UserID, &planetID, &peopleID); err != nil {
		return models.Favorite{}, err
	}
	if planetID.Valid {
		fav.PlanetID = &planetID.Int64
	}
	if peopleID.Valid {
		fav.PeopleID = &peopleID.Int64
	}
	return fav, nil
}

// nullableID turns an optional id into a driver value, nil for SQL NULL.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
