package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result of [ErrorClassificator.Classify]: the
// kind of integrity failure a driver error represents.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and errors that are not
	// integrity violations.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a UNIQUE constraint failure.
	UniqueViolation

	// ForeignKeyViolation is a FOREIGN KEY constraint failure.
	ForeignKeyViolation

	// ConstraintViolation is a NOT NULL or CHECK constraint failure.
	ConstraintViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the class 23 (integrity constraint violation) error codes.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.IntegrityConstraintViolation:
		return ConstraintViolation
	}

	return Unclassified
}
