package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "Alice", "alice@x.com", "hash", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Alice", "alice@x.com", "hash", time.Now()))

		u, err := repo.Create(ctx, &model.User{Name: "Alice", Email: "alice@x.com", PasswordHash: "hash"})

		assert.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"})

		_, err := repo.Create(ctx, &model.User{Name: "Alice", Email: "alice@x.com", PasswordHash: "hash"})

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
		WithArgs("alice@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Alice", "alice@x.com", "hash", time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.FindByEmail(ctx, "alice@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "hash", u.PasswordHash)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
