package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studyaid/studyaid-api/internal/models"
)

type ExtractionRepository interface {
	Create(ctx context.Context, rec *models.ExtractionRecord) error
	GetByID(ctx context.Context, id string) (*models.ExtractionRecord, error)
}

type extractionRepository struct {
	db *sqlx.DB
}

func NewExtractionRepository(db *sqlx.DB) ExtractionRepository {
	return &extractionRepository{db: db}
}

func (r *extractionRepository) Create(ctx context.Context, rec *models.ExtractionRecord) error {
	query := `
		INSERT INTO extraction_documents (id, filename, content, page_count, word_count, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Filename,
		rec.Text,
		rec.PageCount,
		rec.WordCount,
		rec.Language,
		rec.CreatedAt,
		time.Now(),
	)

	return err
}

func (r *extractionRepository) GetByID(ctx context.Context, id string) (*models.ExtractionRecord, error) {
	var rec models.ExtractionRecord

	query := `
		SELECT id, filename, content, page_count, word_count, language, created_at
		FROM extraction_documents
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.Filename,
		&rec.Text,
		&rec.PageCount,
		&rec.WordCount,
		&rec.Language,
		&rec.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
