package repository

import (
	"context"
	"errors"

	"pdfshare/internal/model"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint would be violated.
	ErrDuplicate = errors.New("record already exists")
)

// DocumentRepository is the document registry: ownership, filename, sharing set and blob reference.
// Implementations contain no authorization logic; they validate the fixed schema at the boundary.
type DocumentRepository interface {
	// Create registers a document. ID and CreatedAt are assigned when empty; SharedWith starts empty.
	// Returns an apperr InvalidInput error when doc fails model validation.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document with its sharing set, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListAccessible returns every document owned by or shared with principal.
	ListAccessible(ctx context.Context, principal string) ([]model.DocumentSummary, error)

	// AddShare grants grantee read access. Repeated grants and grants to the owner are no-ops.
	// Returns ErrNotFound if the document does not exist.
	AddShare(ctx context.Context, id, grantee string) error

	// Delete removes the registry entry and its sharing set, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
