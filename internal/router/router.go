package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/studyaid/studyaid-api/internal/config"
	"github.com/studyaid/studyaid-api/internal/handlers"
	"github.com/studyaid/studyaid-api/internal/middleware"
	"github.com/studyaid/studyaid-api/internal/utils"
)

// NewRouter wires all routes, middleware and CORS.
func NewRouter(
	cfg *config.Config,
	extractionHandler *handlers.ExtractionHandler,
	aiHandler *handlers.AIHandler,
	sessionHandler *handlers.SessionHandler,
	logger *utils.Logger,
) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true,"message":"Welcome to the study-aid API"}`))
	}).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true,"data":{"status":"healthy"}}`))
	}).Methods(http.MethodGet)

	api.HandleFunc("/extraction/upload", extractionHandler.Upload).Methods(http.MethodPost)
	api.HandleFunc("/extraction/{id}", extractionHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/ai/summarize", aiHandler.Summarize).Methods(http.MethodPost)
	api.HandleFunc("/ai/quiz", aiHandler.Quiz).Methods(http.MethodPost)
	api.HandleFunc("/ai/diagram", aiHandler.Diagram).Methods(http.MethodPost)

	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler(r)
}
