package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"pdfshare/internal/access"
	"pdfshare/internal/apperr"
	"pdfshare/internal/config"
	"pdfshare/internal/model"
	"pdfshare/internal/repository"
	"pdfshare/internal/storage"
)

// SharedPathPrefix is the application path under which shared links are served.
const SharedPathPrefix = "/pdf/shared/"

// Content is an open stream over a document's bytes. Callers must close Body.
type Content struct {
	Document    *model.Document
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// ShareLink describes how a document can be reached by its grantees.
type ShareLink struct {
	URL          string     `json:"share_url"`
	PresignedURL string     `json:"presigned_url,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// DocumentService defines the document use cases. Every operation takes the acting principal;
// an empty principal is unauthenticated.
type DocumentService interface {
	// Upload streams r into the blob store and registers it as a document owned by principal.
	// The blob is removed again when registration fails.
	Upload(ctx context.Context, principal string, r io.Reader, filename string, size int64) (*model.Document, error)

	// List returns the documents principal owns or was granted, oldest first.
	List(ctx context.Context, principal string) ([]model.DocumentSummary, error)

	// View opens the content of a document principal may read.
	View(ctx context.Context, principal, id string) (*Content, error)

	// ViewShared opens the content through the shared link, authorized per the configured mode.
	ViewShared(ctx context.Context, principal, id string) (*Content, error)

	// Share grants grantee read access. Only the owner may share; repeating a grant is a no-op.
	Share(ctx context.Context, principal, id, grantee string) error

	// ShareLink returns the shareable link of a document owned by principal.
	ShareLink(ctx context.Context, principal, id string) (*ShareLink, error)

	// Delete removes the blob, the registry entry and the comments, in that order.
	Delete(ctx context.Context, principal, id string) error
}

type documentService struct {
	store    storage.Storage
	docs     repository.DocumentRepository
	comments repository.CommentRepository
	opts     options
}

// NewDocumentService constructs a DocumentService over the given stores.
func NewDocumentService(store storage.Storage, docs repository.DocumentRepository, comments repository.CommentRepository, opts ...Option) DocumentService {
	return &documentService{store: store, docs: docs, comments: comments, opts: newOptions(opts)}
}

func (s *documentService) Upload(ctx context.Context, principal string, r io.Reader, filename string, size int64) (doc *model.Document, err error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Upload")
	defer func() { endSpan(span, err) }()

	if principal == "" {
		return nil, errAuthRequired
	}
	if r == nil {
		return nil, apperr.New(apperr.KindInvalidInput, "file is required")
	}
	filename = path.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	if !model.IsDocumentFilename(filename) {
		return nil, apperr.New(apperr.KindInvalidInput, "only PDF files are allowed")
	}

	key := storage.NewBlobRef(filepath.Ext(filename))
	span.SetAttributes(attribute.String("pdfshare.blob_ref", key), attribute.Int64("pdfshare.size", size))
	log := s.opts.logger(ctx).With().Str("owner", principal).Str("blob_ref", key).Logger()

	hash := sha256.New()
	info, err := s.store.Put(ctx, key, io.TeeReader(r, hash), storage.PutObjectOptions{
		Size:        size,
		ContentType: model.PDFContentType,
		Metadata:    map[string]string{"owner": principal},
	})
	if err != nil {
		log.Error().Err(err).Msg("blob upload failed")
		return nil, apperr.Wrap(apperr.KindStorageFailure, "upload failed", err)
	}
	if info.Size <= 0 && size > 0 {
		info.Size = size
	}

	stored, err := s.docs.Create(ctx, &model.Document{
		Owner:       principal,
		Filename:    filename,
		BlobRef:     key,
		Size:        info.Size,
		ContentType: model.PDFContentType,
		Checksum:    hex.EncodeToString(hash.Sum(nil)),
	})
	if err != nil {
		if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.opts.metrics.cleanupFailed()
			log.Error().Err(delErr).AnErr("cause", err).Msg("orphaned blob after failed registration")
		}
		if apperr.KindOf(err) == apperr.KindInvalidInput {
			return nil, err
		}
		log.Error().Err(err).Msg("document registration failed")
		return nil, apperr.Wrap(apperr.KindStorageFailure, "upload failed", err)
	}

	s.opts.metrics.uploaded(stored.Size)
	log.Info().Str("file_id", stored.ID).Int64("size", stored.Size).Msg("document uploaded")
	return stored, nil
}

func (s *documentService) List(ctx context.Context, principal string) (items []model.DocumentSummary, err error) {
	ctx, span := tracer.Start(ctx, "DocumentService.List")
	defer func() { endSpan(span, err) }()

	if principal == "" {
		return nil, errAuthRequired
	}
	items, err = s.docs.ListAccessible(ctx, principal)
	if err != nil {
		return nil, classify(err, "failed to list documents")
	}
	return items, nil
}

func (s *documentService) View(ctx context.Context, principal, id string) (c *Content, err error) {
	ctx, span := tracer.Start(ctx, "DocumentService.View")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("pdfshare.file_id", id))

	if principal == "" {
		return nil, errAuthRequired
	}
	return s.view(ctx, principal, id, true)
}

func (s *documentService) ViewShared(ctx context.Context, principal, id string) (c *Content, err error) {
	ctx, span := tracer.Start(ctx, "DocumentService.ViewShared")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("pdfshare.file_id", id), attribute.String("pdfshare.shared_link_mode", s.opts.sharedLinkMode))

	switch s.opts.sharedLinkMode {
	case config.SharedLinkDisabled:
		return nil, apperr.New(apperr.KindNotFound, "document not found")
	case config.SharedLinkPublic:
		return s.view(ctx, principal, id, false)
	default:
		if principal == "" {
			return nil, errAuthRequired
		}
		return s.view(ctx, principal, id, true)
	}
}

func (s *documentService) view(ctx context.Context, principal, id string, checkAccess bool) (*Content, error) {
	doc, err := findDocument(ctx, s.docs, id)
	if err != nil {
		return nil, err
	}
	if checkAccess {
		if err := s.authorize(ctx, access.OpRead, principal, doc); err != nil {
			return nil, err
		}
	}

	body, info, err := s.store.Get(ctx, doc.BlobRef)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log := s.opts.logger(ctx)
			log.Error().Err(err).Str("file_id", doc.ID).Msg("blob read failed")
		}
		return nil, classify(err, "failed to read document")
	}

	size := info.Size
	if size <= 0 {
		size = doc.Size
	}
	return &Content{Document: doc, Body: body, Size: size, ContentType: doc.ContentType}, nil
}

func (s *documentService) Share(ctx context.Context, principal, id, grantee string) (err error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Share")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("pdfshare.file_id", id))

	if principal == "" {
		return errAuthRequired
	}
	grantee = normalizeEmail(grantee)
	if grantee == "" {
		return apperr.New(apperr.KindInvalidInput, "share_with is required")
	}

	doc, err := findDocument(ctx, s.docs, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, access.OpShare, principal, doc); err != nil {
		return err
	}
	if err := s.docs.AddShare(ctx, doc.ID, grantee); err != nil {
		return classify(err, "failed to share document")
	}

	log := s.opts.logger(ctx)
	log.Info().Str("file_id", doc.ID).Str("owner", principal).Str("grantee", grantee).Msg("document shared")
	return nil
}

func (s *documentService) ShareLink(ctx context.Context, principal, id string) (link *ShareLink, err error) {
	ctx, span := tracer.Start(ctx, "DocumentService.ShareLink")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("pdfshare.file_id", id))

	if principal == "" {
		return nil, errAuthRequired
	}
	doc, err := findDocument(ctx, s.docs, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, access.OpShare, principal, doc); err != nil {
		return nil, err
	}

	link = &ShareLink{URL: SharedPathPrefix + doc.ID}
	// Presigned URLs skip the read check; only public links get one.
	presigner, ok := s.store.(storage.Presigner)
	if !ok || s.opts.sharedLinkMode != config.SharedLinkPublic {
		return link, nil
	}

	expires := s.opts.now().Add(s.opts.shareLinkTTL).UTC()
	u, err := presigner.PresignGet(ctx, doc.BlobRef, s.opts.shareLinkTTL)
	if err != nil {
		log := s.opts.logger(ctx)
		log.Error().Err(err).Str("file_id", doc.ID).Msg("presign failed")
		return nil, apperr.Wrap(apperr.KindStorageFailure, "failed to create share link", err)
	}
	link.PresignedURL = u
	link.ExpiresAt = &expires
	return link, nil
}

func (s *documentService) Delete(ctx context.Context, principal, id string) (err error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Delete")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("pdfshare.file_id", id))

	if principal == "" {
		return errAuthRequired
	}
	doc, err := findDocument(ctx, s.docs, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, access.OpDelete, principal, doc); err != nil {
		return err
	}

	log := s.opts.logger(ctx).With().Str("file_id", doc.ID).Str("blob_ref", doc.BlobRef).Logger()

	// A missing blob means an earlier delete got this far; finish the job.
	if err := s.store.Delete(ctx, doc.BlobRef); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Error().Err(err).Msg("blob delete failed")
		return apperr.Wrap(apperr.KindStorageFailure, "failed to delete document", err)
	}
	if err := s.docs.Delete(ctx, doc.ID); err != nil {
		return classify(err, "failed to delete document")
	}
	if err := s.comments.DeleteFor(ctx, doc.ID); err != nil {
		s.opts.metrics.cleanupFailed()
		log.Error().Err(err).Msg("comments left behind after document delete")
	}

	log.Info().Str("owner", principal).Msg("document deleted")
	return nil
}

func (s *documentService) authorize(ctx context.Context, op access.Op, principal string, doc *model.Document) error {
	if err := access.Check(op, principal, doc); err != nil {
		s.opts.metrics.denied(op)
		log := s.opts.logger(ctx)
		log.Debug().Str("op", string(op)).Str("principal", principal).Str("file_id", doc.ID).Msg("access denied")
		return err
	}
	return nil
}
