package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrPeopleNotFound is returned when no person has the requested id.
	ErrPeopleNotFound = errors.New("person not found")

	// ErrPlanetNotFound is returned when no planet has the requested id.
	ErrPlanetNotFound = errors.New("planet not found")

	// ErrFavoriteNotFound is returned when no favorite has the requested id.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrFavoriteAlreadyExists is returned by AddFavorite when the user already
	// has the same planet or person among their favorites.
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")

	// ErrReferenceNotFound is returned when an insert violates a foreign key,
	// i.e. the referenced user, person or planet does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrConstraintViolation is returned for NOT NULL and CHECK violations.
	ErrConstraintViolation = errors.New("record violates a table constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
