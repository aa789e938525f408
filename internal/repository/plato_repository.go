package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Lixing-Zhang/platos-api/internal/models"
)

var (
	ErrPlatoNotFound = errors.New("plato not found")
)

// PlatoRepository defines the interface for plato data access
type PlatoRepository interface {
	GetAll(ctx context.Context) ([]models.Plato, error)
	GetByID(ctx context.Context, id int64) (*models.Plato, error)
	Create(ctx context.Context, name string, precio float64) (*models.Plato, error)
	Update(ctx context.Context, id int64, update models.PlatoUpdate) (*models.Plato, error)
	Delete(ctx context.Context, id int64) (*models.Plato, error)
}

// InMemoryPlatoRepository implements PlatoRepository with an ordered in-memory list
// All operations hold the lock for their whole read-modify-write
type InMemoryPlatoRepository struct {
	mu     sync.RWMutex
	platos []models.Plato
	nextID int64
}

// DefaultPlatos returns the menu the service starts with
func DefaultPlatos() []models.Plato {
	return []models.Plato{
		{ID: 1, Name: "Pizza Margherita", Precio: 15.99},
		{ID: 2, Name: "Pasta Carbonara", Precio: 12.50},
		{ID: 3, Name: "Ensalada César", Precio: 8.99},
	}
}

// NewInMemoryPlatoRepository creates a repository holding the given seed platos
// Seed ids are trusted to be unique and positive
func NewInMemoryPlatoRepository(seed ...models.Plato) *InMemoryPlatoRepository {
	platos := make([]models.Plato, len(seed))
	copy(platos, seed)

	var maxID int64
	for _, p := range platos {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return &InMemoryPlatoRepository{
		platos: platos,
		nextID: maxID + 1,
	}
}

// GetAll returns all platos in insertion order
func (r *InMemoryPlatoRepository) GetAll(ctx context.Context) ([]models.Plato, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	platos := make([]models.Plato, len(r.platos))
	copy(platos, r.platos)
	return platos, nil
}

// GetByID returns a plato by its ID
func (r *InMemoryPlatoRepository) GetByID(ctx context.Context, id int64) (*models.Plato, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrPlatoNotFound
	}
	plato := r.platos[i]
	return &plato, nil
}

// Create appends a new plato and assigns it the next id
// Ids of deleted platos are never handed out again
func (r *InMemoryPlatoRepository) Create(ctx context.Context, name string, precio float64) (*models.Plato, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plato := models.Plato{ID: r.nextID, Name: name, Precio: precio}
	r.nextID++
	r.platos = append(r.platos, plato)
	return &plato, nil
}

// Update merges the supplied fields onto the stored plato
func (r *InMemoryPlatoRepository) Update(ctx context.Context, id int64, update models.PlatoUpdate) (*models.Plato, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrPlatoNotFound
	}
	plato := update.Apply(r.platos[i])
	r.platos[i] = plato
	return &plato, nil
}

// Delete removes a plato permanently and returns it
func (r *InMemoryPlatoRepository) Delete(ctx context.Context, id int64) (*models.Plato, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrPlatoNotFound
	}
	plato := r.platos[i]
	r.platos = append(r.platos[:i], r.platos[i+1:]...)
	return &plato, nil
}

// indexOf must be called with the lock held
func (r *InMemoryPlatoRepository) indexOf(id int64) int {
	for i, p := range r.platos {
		if p.ID == id {
			return i
		}
	}
	return -1
}
