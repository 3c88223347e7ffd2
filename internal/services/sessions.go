package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/extractor"
	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/repository"
	"github.com/studyaid/studyaid-api/internal/storage"
	"github.com/studyaid/studyaid-api/internal/utils"
	"github.com/studyaid/studyaid-api/internal/validator"
)

// MockUserID stands in for an authenticated user until real auth lands.
// Auth is an external collaborator; every session belongs to this user.
const MockUserID = "550e8400-e29b-41d4-a716-446655440000"

// CreateSessionInput carries the multipart form fields of a session-create
// request. Exactly one of File/Text must be set.
type CreateSessionInput struct {
	Title       string
	Text        string
	File        []byte
	Filename    string
	ContentType string
}

type SessionService interface {
	Create(ctx context.Context, userID string, in *CreateSessionInput) (*models.Session, error)
	GetAll(ctx context.Context, userID string) (*models.SessionListResponse, error)
	GetByID(ctx context.Context, id, userID string) (*models.Session, error)
}

type sessionService struct {
	repo    repository.SessionRepository
	storage storage.Storage
	cfg     *config.Config
	logger  *utils.Logger
}

func NewSessionService(
	repo repository.SessionRepository,
	store storage.Storage,
	cfg *config.Config,
	logger *utils.Logger,
) SessionService {
	return &sessionService{
		repo:    repo,
		storage: store,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *sessionService) Create(ctx context.Context, userID string, in *CreateSessionInput) (*models.Session, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, utils.NewBadRequestError("Title is required")
	}
	if len(in.File) == 0 && in.Text == "" {
		return nil, utils.NewBadRequestError("Either file or text must be provided")
	}

	var (
		originalText *string
		fileName     *string
		fileURL      *string
	)

	if in.Text != "" {
		text := in.Text
		originalText = &text
	}

	if len(in.File) > 0 {
		if err := validator.ValidateFile(in.ContentType, int64(len(in.File)), s.cfg.AllowedMimeTypes, s.cfg.MaxFileSizeMB); err != nil {
			return nil, err
		}

		switch in.ContentType {
		case "application/pdf":
			text, _, err := extractor.ExtractPDF(in.File)
			if err != nil {
				s.logger.Error("Session PDF extraction failed", "error", err, "filename", in.Filename)
				return nil, err
			}
			originalText = &text
		case "text/plain":
			text, _, err := extractor.ExtractTXT(in.File)
			if err != nil {
				s.logger.Error("Session text decoding failed", "error", err, "filename", in.Filename)
				return nil, err
			}
			originalText = &text
		}
		// Image uploads are stored as-is; there is no text to extract.

		key := fmt.Sprintf("sessions/%s/%s", utils.GenerateID(), in.Filename)
		url, err := s.storage.Upload(ctx, key, in.File, in.ContentType)
		if err != nil {
			s.logger.Error("Failed to store session file", "error", err, "key", key)
			return nil, utils.NewInternalError("Failed to store uploaded file")
		}
		fileURL = &url
		fileName = &in.Filename
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:           utils.GenerateID(),
		UserID:       userID,
		Title:        in.Title,
		OriginalText: originalText,
		FileName:     fileName,
		FileURL:      fileURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		s.logger.Error("Failed to create session", "error", err, "title", in.Title)
		return nil, utils.NewInternalError("Failed to create session")
	}

	s.logger.Info("Session created", "id", session.ID, "user_id", userID)
	return session, nil
}

func (s *sessionService) GetAll(ctx context.Context, userID string) (*models.SessionListResponse, error) {
	sessions, err := s.repo.GetAll(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list sessions", "error", err, "user_id", userID)
		return nil, utils.NewInternalError("Failed to list sessions")
	}

	if sessions == nil {
		sessions = []*models.Session{}
	}
	return &models.SessionListResponse{Sessions: sessions, Total: len(sessions)}, nil
}

func (s *sessionService) GetByID(ctx context.Context, id, userID string) (*models.Session, error) {
	session, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		s.logger.Error("Failed to load session", "error", err, "id", id)
		return nil, utils.NewInternalError("Failed to retrieve session")
	}
	if session == nil {
		return nil, utils.NewNotFoundError("Session not found")
	}
	return session, nil
}
