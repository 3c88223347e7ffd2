package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/handlers"
	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/provider"
	"github.com/studyaid/studyaid-api/internal/services"
	"github.com/studyaid/studyaid-api/internal/storage"
	"github.com/studyaid/studyaid-api/internal/utils"
)

type memExtractionRepo struct {
	records map[string]*models.ExtractionRecord
}

func (m *memExtractionRepo) Create(ctx context.Context, rec *models.ExtractionRecord) error {
	m.records[rec.ID] = rec
	return nil
}

func (m *memExtractionRepo) GetByID(ctx context.Context, id string) (*models.ExtractionRecord, error) {
	return m.records[id], nil
}

type memSessionRepo struct {
	sessions map[string]*models.Session
}

func (m *memSessionRepo) Create(ctx context.Context, s *models.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessionRepo) GetAll(ctx context.Context, userID string) ([]*models.Session, error) {
	var out []*models.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSessionRepo) GetByID(ctx context.Context, id, userID string) (*models.Session, error) {
	return m.sessions[id], nil
}

func newTestRouter() http.Handler {
	cfg := &config.Config{
		MinContentLength: 50,
		MaxContentLength: 100000,
		MaxFileSizeMB:    10,
		AllowedMimeTypes: []string{"application/pdf", "text/plain"},
		CORSOrigins:      []string{"http://localhost:5173"},
	}
	logger := utils.NewLogger("error")
	store := storage.NewMockStorage()

	extractionSvc := services.NewExtractionService(
		&memExtractionRepo{records: make(map[string]*models.ExtractionRecord)}, store, cfg, logger)
	aiSvc := services.NewAIService(provider.NewMockProvider(), cfg, logger)
	sessionSvc := services.NewSessionService(
		&memSessionRepo{sessions: make(map[string]*models.Session)}, store, cfg, logger)

	return NewRouter(
		cfg,
		handlers.NewExtractionHandler(extractionSvc, cfg, logger),
		handlers.NewAIHandler(aiSvc, logger),
		handlers.NewSessionHandler(sessionSvc, cfg, logger),
		logger,
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf(`expected {"status":"ok"}, got %s`, rec.Body.String())
	}
}

func TestAPIHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSummarizeRouteWired(t *testing.T) {
	r := newTestRouter()

	body := strings.NewReader(`{"content":"` + strings.Repeat("study material ", 10) + `","style":"brief"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summarize", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if envelope["success"] != true {
		t.Errorf("expected success envelope, got %s", rec.Body.String())
	}
}

func TestShortContentThroughStack(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summarize",
		strings.NewReader(`{"content":"ten chars.","style":"brief"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), utils.CodeContentTooShort) {
		t.Errorf("expected %s in body, got %s", utils.CodeContentTooShort, rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ai/summarize", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected CORS allow origin header, got %q", got)
	}
}
