package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// UserRepository is an in-memory account store keyed by email.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates an empty account store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]model.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	in := *u
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[in.Email]; exists {
		return nil, repository.ErrDuplicate
	}
	r.users[in.Email] = in
	out := in
	return &out, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
