package storage

import (
	"context"
	"fmt"

	"pdfshare/internal/config"
)

// Backend names accepted by STORAGE_BACKEND.
const (
	BackendMinIO  = "minio"
	BackendS3     = "s3"
	BackendFS     = "fs"
	BackendMemory = "memory"
)

// New builds the blob store selected by cfg.Storage.Backend.
func New(ctx context.Context, cfg *config.AppConfig) (Storage, error) {
	switch cfg.Storage.Backend {
	case BackendMinIO, "":
		return NewMinIO(cfg.MinIO)
	case BackendS3:
		return NewS3(ctx, cfg.S3)
	case BackendFS:
		return NewFS(cfg.Storage.FSBaseDir)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
