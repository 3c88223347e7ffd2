package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/services"
	"github.com/studyaid/studyaid-api/internal/utils"
)

type ExtractionHandler struct {
	service services.ExtractionService
	cfg     *config.Config
	logger  *utils.Logger
}

func NewExtractionHandler(service services.ExtractionService, cfg *config.Config, logger *utils.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// Upload handles POST /extraction/upload: a multipart PDF upload that is
// validated, extracted and persisted in one pass.
func (h *ExtractionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.cfg.MaxFileSizeBytes()

	// Reject oversized requests before buffering anything.
	if r.ContentLength > maxBytes {
		respondError(w, h.logger, utils.NewFileTooLargeError(
			fmt.Sprintf("File exceeds maximum size of %dMB", h.cfg.MaxFileSizeMB)))
		return
	}

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

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, h.logger, utils.NewBadRequestError("No file provided"))
		return
	}
	defer file.Close()

	contentType := determineContentType(header.Filename, header.Header.Get("Content-Type"))

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
	if len(data) == 0 {
		respondError(w, h.logger, utils.NewBadRequestError("Uploaded file is empty"))
		return
	}

	resp, err := h.service.Upload(r.Context(), &models.UploadRequest{
		File:        data,
		Filename:    header.Filename,
		ContentType: contentType,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Get handles GET /extraction/{id}.
func (h *ExtractionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, h.logger, utils.NewBadRequestError("Extraction ID is required"))
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// determineContentType maps the filename extension to a MIME type, falling
// back to the header value browsers sent.
func determineContentType(filename, headerContentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	}
	return headerContentType
}
