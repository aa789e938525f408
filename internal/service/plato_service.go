package service

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/platos-api/internal/models"
	"github.com/Lixing-Zhang/platos-api/internal/repository"
	"github.com/Lixing-Zhang/platos-api/internal/validation"
)

// PayloadValidator validates decoded request bodies
type PayloadValidator interface {
	Body(payload interface{}) error
}

// PlatoService handles business logic for platos
// Payloads are validated here, before the repository is touched
type PlatoService struct {
	repo      repository.PlatoRepository
	validator PayloadValidator
}

// NewPlatoService creates a new plato service
func NewPlatoService(repo repository.PlatoRepository, validator PayloadValidator) *PlatoService {
	if validator == nil {
		validator = validation.New()
	}
	return &PlatoService{
		repo:      repo,
		validator: validator,
	}
}

// ListPlatos returns all platos in insertion order
func (s *PlatoService) ListPlatos(ctx context.Context) ([]models.Plato, error) {
	return s.repo.GetAll(ctx)
}

// GetPlato returns a plato by ID
func (s *PlatoService) GetPlato(ctx context.Context, id int64) (*models.Plato, error) {
	return s.repo.GetByID(ctx, id)
}

// CreatePlato validates the payload and stores a new plato
func (s *PlatoService) CreatePlato(ctx context.Context, req models.PlatoCreate) (*models.Plato, error) {
	if err := s.validator.Body(req); err != nil {
		return nil, err
	}

	plato, err := s.repo.Create(ctx, *req.Name, *req.Precio)
	if err != nil {
		return nil, fmt.Errorf("create plato: %w", err)
	}
	return plato, nil
}

// UpdatePlato validates the payload and merges it onto an existing plato
// An empty payload returns the stored plato unchanged
func (s *PlatoService) UpdatePlato(ctx context.Context, id int64, req models.PlatoUpdate) (*models.Plato, error) {
	if err := s.validator.Body(req); err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, req)
}

// DeletePlato removes a plato and returns the deleted record
func (s *PlatoService) DeletePlato(ctx context.Context, id int64) (*models.Plato, error) {
	return s.repo.Delete(ctx, id)
}
