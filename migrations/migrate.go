// Package migrations holds the embedded goose migrations of the catalog
// schema, one directory per supported SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect names a supported SQL dialect. The value doubles as the goose
// dialect name and the migration directory.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration of the given dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errNilDB
	}

	dir, err := dialect.dir()
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func (d Dialect) dir() (string, error) {
	switch d {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}
