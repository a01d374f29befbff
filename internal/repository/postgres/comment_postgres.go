package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// CommentPostgres is the PostgreSQL comment log.
type CommentPostgres struct {
	db *sql.DB
}

// NewCommentPostgres creates a new CommentPostgres repository.
func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

func (r *CommentPostgres) Append(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	in := *c
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now().UTC()
	}

	const q = `
		INSERT INTO comments (id, file_id, author, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, file_id, author, text, created_at
	`
	var out model.Comment
	if err := r.db.QueryRowContext(ctx, q, in.ID, in.FileID, in.Author, in.Text, in.Timestamp).
		Scan(&out.ID, &out.FileID, &out.Author, &out.Text, &out.Timestamp); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *CommentPostgres) ListFor(ctx context.Context, fileID string) ([]model.Comment, error) {
	const q = `
		SELECT id, file_id, author, text, created_at
		FROM comments
		WHERE file_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.FileID, &c.Author, &c.Text, &c.Timestamp); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommentPostgres) DeleteFor(ctx context.Context, fileID string) error {
	const q = `DELETE FROM comments WHERE file_id = $1`
	_, err := r.db.ExecContext(ctx, q, fileID)
	return err
}
