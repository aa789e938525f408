package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Lixing-Zhang/platos-api/internal/models"
)

func ids(platos []models.Plato) []int64 {
	out := make([]int64, 0, len(platos))
	for _, p := range platos {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInMemoryPlatoRepository_GetAll(t *testing.T) {
	repo := NewInMemoryPlatoRepository(DefaultPlatos()...)

	platos, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ids(platos); !equalIDs(got, []int64{1, 2, 3}) {
		t.Errorf("ids = %v, want [1 2 3]", got)
	}
	if platos[2].Name != "Ensalada César" {
		t.Errorf("expected 'Ensalada César', got %s", platos[2].Name)
	}

	// Mutating the returned slice must not touch the registry
	platos[0].Name = "changed"
	again, _ := repo.GetAll(context.Background())
	if again[0].Name != "Pizza Margherita" {
		t.Errorf("registry was mutated through GetAll result: %s", again[0].Name)
	}
}

func TestInMemoryPlatoRepository_GetByID(t *testing.T) {
	repo := NewInMemoryPlatoRepository(DefaultPlatos()...)

	plato, err := repo.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plato.Name != "Pasta Carbonara" || plato.Precio != 12.50 {
		t.Errorf("unexpected plato: %+v", plato)
	}

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, ErrPlatoNotFound) {
		t.Errorf("error = %v, want %v", err, ErrPlatoNotFound)
	}
}

func TestInMemoryPlatoRepository_CreateAssignsNextID(t *testing.T) {
	tests := []struct {
		name   string
		seed   []models.Plato
		wantID int64
	}{
		{"empty registry", nil, 1},
		{"default seed", DefaultPlatos(), 4},
		{"sparse ids", []models.Plato{{ID: 7, Name: "a", Precio: 1}, {ID: 3, Name: "b", Precio: 1}}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewInMemoryPlatoRepository(tt.seed...)
			plato, err := repo.Create(context.Background(), "Tiramisu", 6.5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plato.ID != tt.wantID {
				t.Errorf("id = %d, want %d", plato.ID, tt.wantID)
			}
		})
	}
}

func TestInMemoryPlatoRepository_IDsNotReused(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryPlatoRepository(DefaultPlatos()...)

	created, _ := repo.Create(ctx, "Tiramisu", 6.5)
	if created.ID != 4 {
		t.Fatalf("id = %d, want 4", created.ID)
	}

	if _, err := repo.Delete(ctx, 4); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	next, _ := repo.Create(ctx, "Flan", 4.25)
	if next.ID != 5 {
		t.Errorf("id = %d, want 5 (id 4 must not be reused)", next.ID)
	}
}

func TestInMemoryPlatoRepository_Update(t *testing.T) {
	name := "Pizza Napolitana"
	precio := 20.0

	tests := []struct {
		name       string
		update     models.PlatoUpdate
		wantName   string
		wantPrecio float64
	}{
		{"empty update", models.PlatoUpdate{}, "Pizza Margherita", 15.99},
		{"name only", models.PlatoUpdate{Name: &name}, "Pizza Napolitana", 15.99},
		{"precio only", models.PlatoUpdate{Precio: &precio}, "Pizza Margherita", 20.0},
		{"both", models.PlatoUpdate{Name: &name, Precio: &precio}, "Pizza Napolitana", 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewInMemoryPlatoRepository(DefaultPlatos()...)

			updated, err := repo.Update(context.Background(), 1, tt.update)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.ID != 1 || updated.Name != tt.wantName || updated.Precio != tt.wantPrecio {
				t.Errorf("updated = %+v, want name=%s precio=%v", updated, tt.wantName, tt.wantPrecio)
			}

			stored, _ := repo.GetByID(context.Background(), 1)
			if *stored != *updated {
				t.Errorf("stored = %+v, want %+v", stored, updated)
			}

			all, _ := repo.GetAll(context.Background())
			if got := ids(all); !equalIDs(got, []int64{1, 2, 3}) {
				t.Errorf("update changed ordering: %v", got)
			}
		})
	}
}

func TestInMemoryPlatoRepository_UpdateNotFound(t *testing.T) {
	repo := NewInMemoryPlatoRepository(DefaultPlatos()...)
	name := "x"

	if _, err := repo.Update(context.Background(), 42, models.PlatoUpdate{Name: &name}); !errors.Is(err, ErrPlatoNotFound) {
		t.Errorf("error = %v, want %v", err, ErrPlatoNotFound)
	}
}

func TestInMemoryPlatoRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryPlatoRepository(DefaultPlatos()...)

	deleted, err := repo.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Name != "Pasta Carbonara" {
		t.Errorf("deleted name = %s, want Pasta Carbonara", deleted.Name)
	}

	if _, err := repo.GetByID(ctx, 2); !errors.Is(err, ErrPlatoNotFound) {
		t.Errorf("GetByID after delete: error = %v, want %v", err, ErrPlatoNotFound)
	}

	if _, err := repo.Delete(ctx, 2); !errors.Is(err, ErrPlatoNotFound) {
		t.Errorf("second delete: error = %v, want %v", err, ErrPlatoNotFound)
	}

	all, _ := repo.GetAll(ctx)
	if got := ids(all); !equalIDs(got, []int64{1, 3}) {
		t.Errorf("ids = %v, want [1 3]", got)
	}
}

func TestInMemoryPlatoRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryPlatoRepository()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, "plato", 1)
		}()
	}
	wg.Wait()

	all, _ := repo.GetAll(ctx)
	if len(all) != n {
		t.Fatalf("expected %d platos, got %d", n, len(all))
	}

	seen := make(map[int64]bool, n)
	for _, p := range all {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
}
