package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// CommentRepository is an in-memory comment log.
type CommentRepository struct {
	mu       sync.RWMutex
	comments map[string][]model.Comment
}

var _ repository.CommentRepository = (*CommentRepository)(nil)

// NewCommentRepository creates an empty comment log.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[string][]model.Comment)}
}

func (r *CommentRepository) Append(ctx context.Context, c *model.Comment) (*model.Comment, error) {
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

	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[in.FileID] = append(r.comments[in.FileID], in)
	out := in
	return &out, nil
}

func (r *CommentRepository) ListFor(ctx context.Context, fileID string) ([]model.Comment, error) {
	r.mu.RLock()
	items := append([]model.Comment{}, r.comments[fileID]...)
	r.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})
	return items, nil
}

func (r *CommentRepository) DeleteFor(ctx context.Context, fileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, fileID)
	return nil
}
