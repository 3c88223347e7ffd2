package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/services"
	"github.com/studyaid/studyaid-api/internal/utils"
)

type AIHandler struct {
	service services.AIService
	logger  *utils.Logger
}

func NewAIHandler(service services.AIService, logger *utils.Logger) *AIHandler {
	return &AIHandler{
		service: service,
		logger:  logger,
	}
}

// Summarize handles POST /ai/summarize.
func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, utils.NewBadRequestError("Invalid JSON body"))
		return
	}

	result, err := h.service.Summarize(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Quiz handles POST /ai/quiz.
func (h *AIHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, utils.NewBadRequestError("Invalid JSON body"))
		return
	}

	result, err := h.service.Quiz(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Diagram handles POST /ai/diagram.
func (h *AIHandler) Diagram(w http.ResponseWriter, r *http.Request) {
	var req models.DiagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, utils.NewBadRequestError("Invalid JSON body"))
		return
	}

	result, err := h.service.Diagram(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
