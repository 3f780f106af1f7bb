package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

var userColumns = []string{"id", "email", "password", "is_active"}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with the generated id.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("email", "password", "is_active").
		Values(user.Email, user.Password, user.IsActive).
		Suffix("RETURNING id, email, password, is_active").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err, errorTargets{duplicate: ErrEmailAlreadyExists})
	}

	return created, nil
}

// GetAllUsers returns every user ordered by id.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.GetUserByID").Int64("id", id).Msg("error getting user")
		}
		return models.User{}, r.db.classify(err, errorTargets{notFound: ErrUserNotFound})
	}

	return user, nil
}

// DeleteUser removes the user and, through cascading foreign keys, their
// favorites. Returns [ErrUserNotFound] when nothing was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.db.deleteByID(ctx, models.User{}.TableName(), id, ErrUserNotFound)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.IsActive)
	return user, err
}
