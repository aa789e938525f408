package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

// WelcomeMessage greets clients on the root endpoint
const WelcomeMessage = "¡Bienvenido a la API FastAPI!"

// InfoHandler serves the root and API smoke-test endpoints
type InfoHandler struct {
	version     string
	environment string
	logger      zerolog.Logger
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(version, environment string, logger zerolog.Logger) *InfoHandler {
	return &InfoHandler{
		version:     version,
		environment: environment,
		logger:      logger,
	}
}

// WelcomeResponse represents the root endpoint response
type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// TestResponse represents the API smoke-test response
type TestResponse struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
}

// Root handles GET /
func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, WelcomeResponse{
		Message: WelcomeMessage,
		Version: h.version,
		Docs:    "/docs",
	}, h.logger)
}

// Test handles GET /test under the API prefix
func (h *InfoHandler) Test(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, TestResponse{
		Message:     "API working correctly",
		Environment: h.environment,
	}, h.logger)
}
