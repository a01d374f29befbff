package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// UserPostgres stores accounts in the users table.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	in := *u
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}

	const q = `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, created_at
	`
	var out model.User
	if err := r.db.QueryRowContext(ctx, q, in.ID, in.Name, in.Email, in.PasswordHash, in.CreatedAt).
		Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
