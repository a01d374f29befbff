package service

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pdfshare/internal/apperr"
	"pdfshare/internal/model"
	"pdfshare/internal/repository"
	"pdfshare/internal/storage"
)

var tracer = otel.Tracer("pdfshare/internal/service")

var errAuthRequired = apperr.New(apperr.KindUnauthorized, "authentication required")

// classify turns a repository or storage error into an apperr kind.
// Errors that already carry a kind pass through unchanged.
func classify(err error, detail string) error {
	var ae *apperr.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ae):
		return err
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return apperr.Wrap(apperr.KindNotFound, "document not found", err)
	default:
		return apperr.Wrap(apperr.KindStorageFailure, detail, err)
	}
}

// findDocument resolves id through the registry.
func findDocument(ctx context.Context, docs repository.DocumentRepository, id string) (*model.Document, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "file_id is required")
	}
	doc, err := docs.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to load document")
	}
	return doc, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperr.KindOf(err)))
	}
	span.End()
}
