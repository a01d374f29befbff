package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// Sharing sets live in document_shares and cascade with their document.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	in := *doc
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	if in.ContentType == "" {
		in.ContentType = model.PDFContentType
	}

	const q = `
		INSERT INTO documents (id, owner, filename, blob_ref, size, content_type, checksum, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, owner, filename, blob_ref, size, content_type, checksum, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		in.ID,
		in.Owner,
		in.Filename,
		in.BlobRef,
		in.Size,
		in.ContentType,
		in.Checksum,
		in.CreatedAt,
	)
	out, err := scanDocument(row)
	if err != nil {
		return nil, translate(err)
	}
	out.SharedWith = []string{}
	return out, nil
}

// FindByID fetches a single document and its sharing set.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT id, owner, filename, blob_ref, size, content_type, checksum, created_at
		FROM documents
		WHERE id = $1
	`
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, translate(err)
	}

	const qShares = `
		SELECT grantee
		FROM document_shares
		WHERE document_id = $1
		ORDER BY created_at, grantee
	`
	rows, err := r.db.QueryContext(ctx, qShares, id)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	d.SharedWith = make([]string, 0)
	for rows.Next() {
		var grantee string
		if err := rows.Scan(&grantee); err != nil {
			return nil, err
		}
		d.SharedWith = append(d.SharedWith, grantee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// ListAccessible returns documents the principal owns or was granted, oldest first.
func (r *DocumentPostgres) ListAccessible(ctx context.Context, principal string) ([]model.DocumentSummary, error) {
	const q = `
		SELECT d.id, d.filename, d.owner, d.owner = $1 AS is_owner, d.created_at
		FROM documents d
		WHERE d.owner = $1
		   OR EXISTS (
				SELECT 1 FROM document_shares s
				WHERE s.document_id = d.id AND s.grantee = $1
		   )
		ORDER BY d.created_at, d.id
	`
	rows, err := r.db.QueryContext(ctx, q, principal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentSummary, 0)
	for rows.Next() {
		var s model.DocumentSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.Owner, &s.IsOwner, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// AddShare inserts the grant in one statement. The owner is never inserted, duplicates are ignored,
// and a concurrent delete surfaces as a foreign-key violation, i.e. ErrNotFound.
func (r *DocumentPostgres) AddShare(ctx context.Context, id, grantee string) error {
	const q = `
		WITH doc AS (
			SELECT id, owner FROM documents WHERE id = $1
		), ins AS (
			INSERT INTO document_shares (document_id, grantee)
			SELECT id, $2 FROM doc WHERE owner <> $2
			ON CONFLICT (document_id, grantee) DO NOTHING
		)
		SELECT EXISTS (SELECT 1 FROM doc)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id, grantee).Scan(&exists); err != nil {
		return translate(err)
	}
	if !exists {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a document by ID; its shares are removed by ON DELETE CASCADE.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanDocument(row *sql.Row) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Owner,
		&d.Filename,
		&d.BlobRef,
		&d.Size,
		&d.ContentType,
		&d.Checksum,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
