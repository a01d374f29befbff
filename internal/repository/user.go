package repository

import (
	"context"

	"pdfshare/internal/model"
)

// UserRepository stores accounts for the login endpoints.
type UserRepository interface {
	// Create stores u, returning ErrDuplicate if the email is taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns the account or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
