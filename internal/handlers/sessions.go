package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/services"
	"github.com/studyaid/studyaid-api/internal/utils"
)

type SessionHandler struct {
	service services.SessionService
	cfg     *config.Config
	logger  *utils.Logger
}

func NewSessionHandler(service services.SessionService, cfg *config.Config, logger *utils.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// Create handles POST /sessions: multipart form with a title plus either an
// uploaded file or pasted text.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.cfg.MaxFileSizeBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			respondError(w, h.logger, utils.NewFileTooLargeError(
				fmt.Sprintf("File exceeds maximum size of %dMB", h.cfg.MaxFileSizeMB)))
			return
		}
		respondError(w, h.logger, utils.NewBadRequestError("Invalid form data"))
		return
	}

	in := &services.CreateSessionInput{
		Title: r.FormValue("title"),
		Text:  r.FormValue("text"),
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if err != nil {
			respondError(w, h.logger, utils.NewInternalError("Failed to read file"))
			return
		}
		if int64(len(data)) > maxBytes {
			respondError(w, h.logger, utils.NewFileTooLargeError(
				fmt.Sprintf("File exceeds maximum size of %dMB", h.cfg.MaxFileSizeMB)))
			return
		}

		in.File = data
		in.Filename = header.Filename
		in.ContentType = determineContentType(header.Filename, header.Header.Get("Content-Type"))
	}

	session, err := h.service.Create(r.Context(), services.MockUserID, in)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// List handles GET /sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAll(r.Context(), services.MockUserID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Get handles GET /sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, h.logger, utils.NewBadRequestError("Session ID is required"))
		return
	}

	session, err := h.service.GetByID(r.Context(), id, services.MockUserID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}
