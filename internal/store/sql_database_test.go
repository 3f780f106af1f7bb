package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/migrations"
)

func TestNewDB_PlaceholderFormat(t *testing.T) {
	tests := []struct {
		name    string
		dialect migrations.Dialect
		want    string
	}{
		{name: "postgres", dialect: migrations.DialectPostgres, want: "SELECT id FROM people WHERE id = $1"},
		{name: "sqlite", dialect: migrations.DialectSQLite, want: "SELECT id FROM people WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { conn.Close() })

			db := newDB(conn, tt.dialect, NewSQLiteErrorClassifier(), logger.Nop())
			assert.Equal(t, tt.dialect, db.Dialect())

			query, args, err := db.builder.Select("id").From("people").Where("id = ?", 1).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{1}, args)
		})
	}
}
