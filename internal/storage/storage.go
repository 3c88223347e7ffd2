package storage

import (
	"context"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/utils"
)

// Storage persists uploaded file bytes and hands back a URL the frontend
// can fetch them from.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// New returns S3-backed storage when an endpoint is configured and the mock
// otherwise. Like the AI provider, an unconfigured backend is a mode
// switch, not a startup failure.
func New(cfg *config.Config, logger *utils.Logger) (Storage, error) {
	if cfg.S3Endpoint == "" {
		logger.Warn("S3_ENDPOINT not set, file storage runs in mock mode")
		return NewMockStorage(), nil
	}
	return NewS3Storage(cfg)
}
