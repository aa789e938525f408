package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	version string
	logger  zerolog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		version: version,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	}, h.logger)
}
