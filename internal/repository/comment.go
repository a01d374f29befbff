package repository

import (
	"context"

	"pdfshare/internal/model"
)

// CommentRepository is the append-only comment log keyed by document id.
// It does not check that the document exists.
type CommentRepository interface {
	// Append stores c, assigning ID and Timestamp when empty.
	Append(ctx context.Context, c *model.Comment) (*model.Comment, error)

	// ListFor returns the comments for fileID ordered by timestamp ascending.
	ListFor(ctx context.Context, fileID string) ([]model.Comment, error)

	// DeleteFor removes every comment for fileID. Deleting none is not an error.
	DeleteFor(ctx context.Context, fileID string) error
}
