package model

import (
	"strings"
	"time"

	"pdfshare/internal/apperr"
)

// Comment is an append-only annotation on a document.
type Comment struct {
	ID        string    `json:"id"`
	FileID    string    `json:"file_id"`
	Author    string    `json:"user_email"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate rejects comments without a file, author or text.
func (c *Comment) Validate() error {
	if c == nil {
		return apperr.New(apperr.KindInvalidInput, "comment is required")
	}
	if strings.TrimSpace(c.FileID) == "" {
		return apperr.New(apperr.KindInvalidInput, "file_id is required")
	}
	if strings.TrimSpace(c.Author) == "" {
		return apperr.New(apperr.KindInvalidInput, "author is required")
	}
	if strings.TrimSpace(c.Text) == "" {
		return apperr.New(apperr.KindInvalidInput, "comment text must not be empty")
	}
	return nil
}
