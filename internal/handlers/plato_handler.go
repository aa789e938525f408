package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Lixing-Zhang/platos-api/internal/models"
	"github.com/Lixing-Zhang/platos-api/internal/repository"
	"github.com/Lixing-Zhang/platos-api/internal/service"
	"github.com/Lixing-Zhang/platos-api/internal/validation"
	"github.com/rs/zerolog"
)

// PlatoNotFoundMessage is returned whenever an id does not match a plato
const PlatoNotFoundMessage = "Plato not found"

// PlatoHandler handles plato-related HTTP requests
type PlatoHandler struct {
	service *service.PlatoService
	logger  zerolog.Logger
}

// NewPlatoHandler creates a new plato handler
func NewPlatoHandler(service *service.PlatoService, logger zerolog.Logger) *PlatoHandler {
	return &PlatoHandler{
		service: service,
		logger:  logger,
	}
}

// ListPlatos handles GET /platos
func (h *PlatoHandler) ListPlatos(w http.ResponseWriter, r *http.Request) {
	platos, err := h.service.ListPlatos(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "failed to list platos")
		return
	}

	WriteJSON(w, http.StatusOK, platos, h.logger)
}

// GetPlato handles GET /platos/{plato_id}
// - 200: the plato
// - 404: no plato with that id
// - 422: id is not an integer
func (h *PlatoHandler) GetPlato(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlatoID(r)
	if err != nil {
		h.writeServiceError(w, err, "invalid plato id")
		return
	}

	plato, err := h.service.GetPlato(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "failed to get plato")
		return
	}

	WriteJSON(w, http.StatusOK, plato, h.logger)
}

// CreatePlato handles POST /platos
func (h *PlatoHandler) CreatePlato(w http.ResponseWriter, r *http.Request) {
	name, precio, err := decodePlato(r)
	if err != nil {
		h.writeServiceError(w, err, "failed to decode plato")
		return
	}

	req := models.PlatoCreate{Name: name, Precio: precio}
	plato, err := h.service.CreatePlato(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "failed to create plato")
		return
	}

	WriteJSON(w, http.StatusOK, plato, h.logger)
	h.logger.Info().Int64("plato_id", plato.ID).Str("name", plato.Name).Msg("plato created")
}

// UpdatePlato handles PUT /platos/{plato_id}
// Only the fields present in the body are changed
func (h *PlatoHandler) UpdatePlato(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlatoID(r)
	if err != nil {
		h.writeServiceError(w, err, "invalid plato id")
		return
	}

	name, precio, err := decodePlato(r)
	if err != nil {
		h.writeServiceError(w, err, "failed to decode plato update")
		return
	}

	req := models.PlatoUpdate{Name: name, Precio: precio}
	plato, err := h.service.UpdatePlato(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, err, "failed to update plato")
		return
	}

	WriteJSON(w, http.StatusOK, plato, h.logger)
	h.logger.Info().Int64("plato_id", plato.ID).Msg("plato updated")
}

// DeletePlato handles DELETE /platos/{plato_id}
func (h *PlatoHandler) DeletePlato(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlatoID(r)
	if err != nil {
		h.writeServiceError(w, err, "invalid plato id")
		return
	}

	plato, err := h.service.DeletePlato(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "failed to delete plato")
		return
	}

	WriteJSON(w, http.StatusOK, models.DeleteResponse{
		Message: fmt.Sprintf("Plato '%s' deleted successfully", plato.Name),
	}, h.logger)
	h.logger.Info().Int64("plato_id", plato.ID).Msg("plato deleted")
}

// writeServiceError maps service errors onto status codes
func (h *PlatoHandler) writeServiceError(w http.ResponseWriter, err error, msg string) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		h.logger.Debug().Err(err).Msg(msg)
		WriteError(w, http.StatusUnprocessableEntity, verrs, h.logger)
	case errors.Is(err, repository.ErrPlatoNotFound):
		h.logger.Debug().Err(err).Msg(msg)
		WriteError(w, http.StatusNotFound, PlatoNotFoundMessage, h.logger)
	default:
		h.logger.Error().Err(err).Msg(msg)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
