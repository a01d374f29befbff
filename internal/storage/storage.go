// Package storage contains the blob store abstraction and its backends (MinIO, S3, local disk, memory).
// A blob is written once under a fresh key and never mutated in place.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a key does not resolve to a stored blob.
var ErrNotFound = errors.New("blob not found")

// ErrSizeMismatch is returned when fewer or more bytes than announced were written.
var ErrSizeMismatch = errors.New("blob size mismatch")

// blobPrefix is the key namespace for document content.
const blobPrefix = "documents"

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the blob store used by the document service.
// Methods use context and streaming readers; implementations are safe for concurrent use.
type Storage interface {
	// Put stores the content of r under key. Content is visible only once fully written.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get returns a lazy stream over the content. Callers must close it.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the content, returning ErrNotFound if absent.
	Delete(ctx context.Context, key string) error
}

// Presigner is implemented by backends that can hand out time-limited download URLs.
type Presigner interface {
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// NewBlobRef returns a fresh key for a blob with the given extension, e.g. "documents/<uuid>.pdf".
func NewBlobRef(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(blobPrefix, uuid.NewString()+ext)
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// ctxReadCloser is a ctxReader that closes the underlying reader.
type ctxReadCloser struct {
	ctxReader
	c io.Closer
}

func (c ctxReadCloser) Close() error {
	return c.c.Close()
}

func newCtxReadCloser(ctx context.Context, rc io.ReadCloser) io.ReadCloser {
	return ctxReadCloser{ctxReader: ctxReader{ctx: ctx, r: rc}, c: rc}
}

// countingReader records how many bytes passed through.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
