package model

import (
	"path/filepath"
	"strings"
	"time"

	"pdfshare/internal/apperr"
)

// PDFContentType is the content type stored for every document.
const PDFContentType = "application/pdf"

// documentExtensions lists the recognized document extensions (lowercase).
var documentExtensions = map[string]struct{}{
	".pdf": {},
}

// Document binds a stored blob to its ownership and sharing metadata.
// BlobRef is internal and never serialized.
type Document struct {
	ID          string    `json:"file_id"`
	Owner       string    `json:"owner"`
	Filename    string    `json:"filename"`
	BlobRef     string    `json:"-"`
	SharedWith  []string  `json:"shared_with"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Checksum    string    `json:"checksum"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentSummary is a list entry as seen by one principal.
type DocumentSummary struct {
	ID        string    `json:"file_id"`
	Filename  string    `json:"filename"`
	Owner     string    `json:"owner"`
	IsOwner   bool      `json:"is_owner"`
	CreatedAt time.Time `json:"created_at"`
}

// IsDocumentFilename reports whether name carries a recognized document extension.
func IsDocumentFilename(name string) bool {
	_, ok := documentExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Validate checks the fields required to register a document.
func (d *Document) Validate() error {
	if d == nil {
		return apperr.New(apperr.KindInvalidInput, "document is required")
	}
	if strings.TrimSpace(d.Owner) == "" {
		return apperr.New(apperr.KindInvalidInput, "owner is required")
	}
	if strings.TrimSpace(d.Filename) == "" {
		return apperr.New(apperr.KindInvalidInput, "filename is required")
	}
	if !IsDocumentFilename(d.Filename) {
		return apperr.New(apperr.KindInvalidInput, "only PDF files are allowed")
	}
	if d.BlobRef == "" {
		return apperr.New(apperr.KindInvalidInput, "blob reference is required")
	}
	if d.Size < 0 {
		return apperr.New(apperr.KindInvalidInput, "size must not be negative")
	}
	return nil
}

// IsSharedWith reports whether principal is in the sharing set.
func (d *Document) IsSharedWith(principal string) bool {
	for _, p := range d.SharedWith {
		if p == principal {
			return true
		}
	}
	return false
}

// Summary renders the document as listed for principal.
func (d *Document) Summary(principal string) DocumentSummary {
	return DocumentSummary{
		ID:        d.ID,
		Filename:  d.Filename,
		Owner:     d.Owner,
		IsOwner:   d.Owner == principal,
		CreatedAt: d.CreatedAt,
	}
}
