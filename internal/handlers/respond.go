package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/utils"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.SuccessResponse(data))
}

// respondError writes the uniform error envelope. AppError details flow
// through; anything else is masked as an internal error so raw causes never
// reach the client.
func respondError(w http.ResponseWriter, logger *utils.Logger, err error) {
	var body models.Response
	status := utils.StatusCodeFor(err)

	if appErr, ok := err.(*utils.AppError); ok {
		body = models.ErrorResponse(appErr.Code, appErr.Message, appErr.Details)
	} else {
		body = models.ErrorResponse(utils.CodeInternalError, "Internal server error", "")
	}

	logger.Error("Request error", "status", status, "code", body.Error.Code, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
