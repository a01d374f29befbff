// Package memory provides in-process repositories. The maps are the store: each
// method holds the lock for one whole operation, mirroring single-statement atomicity.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// DocumentRepository is an in-memory document registry.
type DocumentRepository struct {
	mu    sync.RWMutex
	docs  map[string]*model.Document
	order []string
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates an empty registry.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{docs: make(map[string]*model.Document)}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	d := *doc
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	if d.ContentType == "" {
		d.ContentType = model.PDFContentType
	}
	d.SharedWith = []string{}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.docs[d.ID]; exists {
		return nil, repository.ErrDuplicate
	}
	for _, other := range r.docs {
		if other.BlobRef == d.BlobRef {
			return nil, repository.ErrDuplicate
		}
	}
	r.docs[d.ID] = &d
	r.order = append(r.order, d.ID)
	return clone(&d), nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(d), nil
}

func (r *DocumentRepository) ListAccessible(ctx context.Context, principal string) ([]model.DocumentSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]model.DocumentSummary, 0)
	if principal == "" {
		return items, nil
	}
	for _, id := range r.order {
		d, ok := r.docs[id]
		if !ok {
			continue
		}
		if d.Owner == principal || d.IsSharedWith(principal) {
			items = append(items, d.Summary(principal))
		}
	}
	return items, nil
}

func (r *DocumentRepository) AddShare(ctx context.Context, id, grantee string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	if grantee == d.Owner || d.IsSharedWith(grantee) {
		return nil
	}
	d.SharedWith = append(d.SharedWith, grantee)
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.docs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func clone(d *model.Document) *model.Document {
	out := *d
	out.SharedWith = append([]string{}, d.SharedWith...)
	return &out
}
