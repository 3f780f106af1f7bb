package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/migrations"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// newMockDB returns a DB speaking the PostgreSQL dialect over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	user := models.User{Email: "a@b.com", Password: "hash", IsActive: true}

	mock.ExpectQuery(`INSERT INTO users \(email,password,is_active\) VALUES \(\$1,\$2,\$3\) RETURNING id, email, password, is_active`).
		WithArgs(user.Email, user.Password, user.IsActive).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, user.Email, user.Password, true))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "a@b.com", created.Email)
	assert.True(t, created.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorContains(t, err, "db network error")
}

func TestGetAllUsers_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, email, password, is_active FROM users ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "a@b.com", "h1", true).
			AddRow(2, "c@d.com", "h2", false))

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "c@d.com", users[1].Email)
	assert.False(t, users[1].IsActive)
}

func TestGetAllUsers_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestGetAllUsers_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("boom"))

	_, err := repo.GetAllUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetAllUsers_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.GetAllUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestGetUserByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByID_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "a@b.com", "h", true))

	user, err := repo.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name     string
		result   driver.Result
		execErr  error
		expected error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), expected: ErrUserNotFound},
		{name: "exec error", execErr: errors.New("boom"), expected: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.Nop())

			exp := mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(int64(3))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteUser(context.Background(), 3)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
