package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/example/carecompanion/internal/config"
	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/observability"
)

// DocumentProcessor runs the pipeline for one upload.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, content []byte, filename string) (models.Status, *models.ProcessResponse)
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	processor DocumentProcessor
	app       config.AppConfig
	upload    config.UploadConfig
	started   time.Time
	now       func() time.Time
}

func NewServer(processor DocumentProcessor, app config.AppConfig, upload config.UploadConfig) *Server {
	return &Server{
		processor: processor,
		app:       app,
		upload:    upload,
		started:   time.Now(),
		now:       time.Now,
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST "+s.app.APIPrefix+"/process-document", s.handleProcessDocument)
}

// Handler returns the routed mux wrapped in the standard middleware chain.
func (s *Server) Handler(srv config.ServerConfig, metrics *observability.Metrics) http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	var h http.Handler = mux
	h = TimeoutMiddleware(srv.RequestTimeout)(h)
	h = ObservabilityMiddleware(metrics)(h)
	h = CORSMiddleware(srv.AllowedOrigins)(h)
	h = LoggingMiddleware(h)
	h = RecoverMiddleware(h)
	h = RequestIDMiddleware(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	respondWithJSON(w, http.StatusOK, models.HealthResponse{
		Status:        "healthy",
		Version:       s.app.Version,
		Timestamp:     models.Timestamp(now),
		UptimeSeconds: now.Sub(s.started).Seconds(),
	})
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, models.ErrorResponse{
		Error:     "HTTP_ERROR",
		Message:   message,
		Timestamp: models.Timestamp(time.Now()),
	})
}

func respondInternalError(w http.ResponseWriter, details map[string]any) {
	respondWithJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Error:     "INTERNAL_ERROR",
		Message:   "An unexpected error occurred",
		Details:   details,
		Timestamp: models.Timestamp(time.Now()),
	})
}
