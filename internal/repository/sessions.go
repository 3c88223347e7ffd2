package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/studyaid/studyaid-api/internal/models"
)

// SessionRepository persists study sessions scoped to a user.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetAll(ctx context.Context, userID string) ([]*models.Session, error)
	GetByID(ctx context.Context, id, userID string) (*models.Session, error)
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, title, original_text, file_name, file_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Title,
		session.OriginalText,
		session.FileName,
		session.FileURL,
		session.CreatedAt,
		session.UpdatedAt,
	)

	return err
}

func (r *sessionRepository) GetAll(ctx context.Context, userID string) ([]*models.Session, error) {
	query := `
		SELECT id, user_id, title, original_text, file_name, file_url, created_at, updated_at
		FROM sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var sessions []*models.Session
	if err := r.db.SelectContext(ctx, &sessions, query, userID); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id, userID string) (*models.Session, error) {
	var session models.Session

	query := `
		SELECT id, user_id, title, original_text, file_name, file_url, created_at, updated_at
		FROM sessions
		WHERE id = $1 AND user_id = $2
	`

	err := r.db.GetContext(ctx, &session, query, id, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}
