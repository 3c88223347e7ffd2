package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/extractor"
	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/repository"
	"github.com/studyaid/studyaid-api/internal/storage"
	"github.com/studyaid/studyaid-api/internal/utils"
	"github.com/studyaid/studyaid-api/internal/validator"
)

// ExtractionService handles the upload pipeline: validate the file, extract
// its text, store the original bytes and persist the extraction record.
type ExtractionService interface {
	Upload(ctx context.Context, req *models.UploadRequest) (*models.ExtractionResponse, error)
	Get(ctx context.Context, id string) (*models.ExtractionResponse, error)
}

type extractionService struct {
	repo    repository.ExtractionRepository
	storage storage.Storage
	cfg     *config.Config
	logger  *utils.Logger
}

func NewExtractionService(
	repo repository.ExtractionRepository,
	store storage.Storage,
	cfg *config.Config,
	logger *utils.Logger,
) ExtractionService {
	return &extractionService{
		repo:    repo,
		storage: store,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *extractionService) Upload(ctx context.Context, req *models.UploadRequest) (*models.ExtractionResponse, error) {
	// The extraction endpoint accepts PDFs only, regardless of the wider
	// allowed set used for session uploads.
	if req.ContentType != "application/pdf" {
		return nil, utils.NewInvalidFileTypeError("Only PDF files are supported")
	}

	if err := validator.ValidateFile(req.ContentType, int64(len(req.File)), s.cfg.AllowedMimeTypes, s.cfg.MaxFileSizeMB); err != nil {
		return nil, err
	}

	text, meta, err := extractor.ExtractPDF(req.File)
	if err != nil {
		s.logger.Error("Text extraction failed", "error", err, "filename", req.Filename)
		return nil, err
	}

	id := utils.GenerateID()
	key := fmt.Sprintf("extractions/%s/%s", id, req.Filename)
	if _, err := s.storage.Upload(ctx, key, req.File, req.ContentType); err != nil {
		s.logger.Error("Failed to store uploaded file", "error", err, "key", key)
		return nil, utils.NewInternalError("Failed to store document")
	}

	now := time.Now().UTC()
	rec := &models.ExtractionRecord{
		ID:        id,
		Filename:  req.Filename,
		Text:      text,
		PageCount: meta.PageCount,
		WordCount: meta.WordCount,
		Language:  meta.Language,
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("Failed to save extraction record", "error", err, "id", id)
		// Best-effort cleanup of the stored object
		_ = s.storage.Delete(ctx, key)
		return nil, utils.NewInternalError("Failed to save extraction record")
	}

	s.logger.Info("Document extracted",
		"id", id,
		"filename", req.Filename,
		"pages", meta.PageCount,
		"words", meta.WordCount)

	return &models.ExtractionResponse{
		ID:        id,
		Filename:  req.Filename,
		Text:      text,
		Metadata:  meta,
		CreatedAt: now,
	}, nil
}

func (s *extractionService) Get(ctx context.Context, id string) (*models.ExtractionResponse, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load extraction record", "error", err, "id", id)
		return nil, utils.NewInternalError("Failed to retrieve extraction record")
	}
	if rec == nil {
		return nil, utils.NewNotFoundError("Extraction record not found")
	}

	return &models.ExtractionResponse{
		ID:       rec.ID,
		Filename: rec.Filename,
		Text:     rec.Text,
		Metadata: models.ExtractionMetadata{
			PageCount: rec.PageCount,
			WordCount: rec.WordCount,
			Language:  rec.Language,
		},
		CreatedAt: rec.CreatedAt,
	}, nil
}
