package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfshare/internal/apperr"
	"pdfshare/internal/model"
)

var commentColumns = []string{"id", "file_id", "author", "text", "created_at"}

func TestCommentPostgres_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCommentPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO comments").
			WithArgs(sqlmock.AnyArg(), "F1", "bob@x.com", "looks good", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow("c1", "F1", "bob@x.com", "looks good", now))

		c, err := repo.Append(ctx, &model.Comment{FileID: "F1", Author: "bob@x.com", Text: "looks good"})

		assert.NoError(t, err)
		assert.Equal(t, "c1", c.ID)
		assert.Equal(t, now, c.Timestamp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := repo.Append(ctx, &model.Comment{FileID: "F1", Author: "bob@x.com", Text: ""})

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentPostgres_ListFor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCommentPostgres(db)
	earlier := time.Now().Add(-time.Minute)

	mock.ExpectQuery("SELECT (.+) FROM comments WHERE file_id = \\$1 ORDER BY created_at ASC").
		WithArgs("F1").
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow("c1", "F1", "bob@x.com", "first", earlier).
			AddRow("c2", "F1", "alice@x.com", "second", time.Now()))

	items, err := repo.ListFor(context.Background(), "F1")

	assert.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentPostgres_DeleteFor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCommentPostgres(db)

	mock.ExpectExec("DELETE FROM comments WHERE file_id = ?").
		WithArgs("F1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteFor(context.Background(), "F1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
