package services

import (
	"context"
	"strings"
	"testing"

	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/storage"
	"github.com/studyaid/studyaid-api/internal/testutil"
	"github.com/studyaid/studyaid-api/internal/utils"
)

type mockExtractionRepo struct {
	records map[string]*models.ExtractionRecord
}

func newMockExtractionRepo() *mockExtractionRepo {
	return &mockExtractionRepo{records: make(map[string]*models.ExtractionRecord)}
}

func (m *mockExtractionRepo) Create(ctx context.Context, rec *models.ExtractionRecord) error {
	m.records[rec.ID] = rec
	return nil
}

func (m *mockExtractionRepo) GetByID(ctx context.Context, id string) (*models.ExtractionRecord, error) {
	return m.records[id], nil
}

func newExtractionService(repo *mockExtractionRepo) ExtractionService {
	return NewExtractionService(repo, storage.NewMockStorage(), testConfig(), utils.NewLogger("error"))
}

func TestUploadExtractsPDF(t *testing.T) {
	repo := newMockExtractionRepo()
	svc := newExtractionService(repo)

	resp, err := svc.Upload(context.Background(), &models.UploadRequest{
		File:        testutil.MinimalPDF("Extracted test content"),
		Filename:    "study_guide.pdf",
		ContentType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text != "Extracted test content" {
		t.Errorf("unexpected text: %q", resp.Text)
	}
	if resp.Metadata.PageCount != 1 {
		t.Errorf("expected page_count 1, got %d", resp.Metadata.PageCount)
	}
	if resp.Metadata.WordCount != 3 {
		t.Errorf("expected word_count 3, got %d", resp.Metadata.WordCount)
	}
	if resp.Filename != "study_guide.pdf" {
		t.Errorf("unexpected filename: %q", resp.Filename)
	}

	if _, ok := repo.records[resp.ID]; !ok {
		t.Error("extraction record was not persisted")
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	svc := newExtractionService(newMockExtractionRepo())

	_, err := svc.Upload(context.Background(), &models.UploadRequest{
		File:        []byte("some text content"),
		Filename:    "notes.txt",
		ContentType: "text/plain",
	})

	assertAppErrorCode(t, err, utils.CodeInvalidFileType)
	if !strings.Contains(err.Error(), "Only PDF files are supported") {
		t.Errorf("expected PDF-only message, got %q", err.Error())
	}
}

func TestUploadRejectsCorruptPDF(t *testing.T) {
	svc := newExtractionService(newMockExtractionRepo())

	_, err := svc.Upload(context.Background(), &models.UploadRequest{
		File:        []byte("%PDF-broken garbage"),
		Filename:    "broken.pdf",
		ContentType: "application/pdf",
	})
	if err == nil {
		t.Fatal("expected error for corrupt PDF")
	}

	appErr, ok := err.(*utils.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != utils.CodeUnsupportedFormat && appErr.Code != utils.CodeExtractionFailed {
		t.Errorf("unexpected code %s", appErr.Code)
	}
}

func TestGetReturnsStoredRecord(t *testing.T) {
	repo := newMockExtractionRepo()
	svc := newExtractionService(repo)

	resp, err := svc.Upload(context.Background(), &models.UploadRequest{
		File:        testutil.MinimalPDF("Persisted and retrieved"),
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	got, err := svc.Get(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Text != resp.Text || got.Metadata != resp.Metadata {
		t.Errorf("retrieved record differs: %+v vs %+v", got, resp)
	}
}

func TestGetUnknownID(t *testing.T) {
	svc := newExtractionService(newMockExtractionRepo())

	_, err := svc.Get(context.Background(), "missing")
	assertAppErrorCode(t, err, utils.CodeNotFound)
}
