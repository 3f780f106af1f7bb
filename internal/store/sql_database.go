// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/migrations"
)

// DB is the process-wide connection pool shared by all repositories.
// builder emits placeholders in the format of the connected dialect.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.DSN: a postgres:// or
// postgresql:// URL connects to PostgreSQL, anything else is treated as a
// SQLite file path.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, dialect migrations.Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// errorTargets names the store sentinels a driver error is translated into.
// Zero fields fall back to generic sentinels.
type errorTargets struct {
	notFound  error
	duplicate error
	fallback  error
}

// classify converts a driver error into a store sentinel wrapping the
// original error. sql.ErrNoRows becomes targets.notFound unwrapped.
func (db *DB) classify(err error, targets errorTargets) error {
	if targets.fallback == nil {
		targets.fallback = ErrExecutingQuery
	}
	if targets.duplicate == nil {
		targets.duplicate = ErrConstraintViolation
	}

	if errors.Is(err, sql.ErrNoRows) && targets.notFound != nil {
		return targets.notFound
	}

	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", targets.fallback, err)
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", targets.duplicate, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", targets.fallback, err)
	}
}

// deleteByID removes the row of table with the given id and returns
// notFound when no row was affected.
func (db *DB) deleteByID(ctx context.Context, table string, id int64, notFound error) error {
	log := logger.FromContext(ctx)

	query, args, err := db.builder.
		Delete(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*DB.deleteByID").Str("table", table).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*DB.deleteByID").Str("table", table).Int64("id", id).Msg("error deleting row")
		return db.classify(err, errorTargets{fallback: ErrExecutingStatement})
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*DB.deleteByID").Str("table", table).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
