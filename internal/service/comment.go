package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"pdfshare/internal/access"
	"pdfshare/internal/apperr"
	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// CommentService defines the comment use cases. Commenting and reading comments both
// require read access to the document.
type CommentService interface {
	Add(ctx context.Context, principal, fileID, text string) (*model.Comment, error)
	List(ctx context.Context, principal, fileID string) ([]model.Comment, error)
}

type commentService struct {
	docs     repository.DocumentRepository
	comments repository.CommentRepository
	opts     options
}

// NewCommentService constructs a CommentService.
func NewCommentService(docs repository.DocumentRepository, comments repository.CommentRepository, opts ...Option) CommentService {
	return &commentService{docs: docs, comments: comments, opts: newOptions(opts)}
}

func (s *commentService) Add(ctx context.Context, principal, fileID, text string) (c *model.Comment, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.Add")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("pdfshare.file_id", fileID))

	if principal == "" {
		return nil, errAuthRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "comment text must not be empty")
	}
	doc, err := s.readable(ctx, principal, fileID)
	if err != nil {
		return nil, err
	}

	c, err = s.comments.Append(ctx, &model.Comment{FileID: doc.ID, Author: principal, Text: text})
	if err != nil {
		return nil, classify(err, "failed to add comment")
	}
	return c, nil
}

func (s *commentService) List(ctx context.Context, principal, fileID string) (items []model.Comment, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.List")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("pdfshare.file_id", fileID))

	if principal == "" {
		return nil, errAuthRequired
	}
	doc, err := s.readable(ctx, principal, fileID)
	if err != nil {
		return nil, err
	}
	items, err = s.comments.ListFor(ctx, doc.ID)
	if err != nil {
		return nil, classify(err, "failed to list comments")
	}
	return items, nil
}

func (s *commentService) readable(ctx context.Context, principal, fileID string) (*model.Document, error) {
	doc, err := findDocument(ctx, s.docs, fileID)
	if err != nil {
		return nil, err
	}
	if err := access.Check(access.OpRead, principal, doc); err != nil {
		s.opts.metrics.denied(access.OpRead)
		return nil, err
	}
	return doc, nil
}
