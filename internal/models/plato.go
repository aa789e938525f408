package models

// Plato represents a dish on the menu
// JSON uses "precio" for the price field to match the public API
type Plato struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Precio float64 `json:"precio"`
}

// PlatoCreate is the payload for creating a plato
// Pointers let validation tell a missing field apart from a zero value
type PlatoCreate struct {
	Name   *string  `json:"name" validate:"required,min=1,max=100"`
	Precio *float64 `json:"precio" validate:"required,gt=0"`
}

// PlatoUpdate is the payload for a partial update
// A nil field is left untouched on the stored plato
type PlatoUpdate struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Precio *float64 `json:"precio,omitempty" validate:"omitempty,gt=0"`
}

// IsEmpty reports whether the update carries no fields
func (u PlatoUpdate) IsEmpty() bool {
	return u.Name == nil && u.Precio == nil
}

// Apply returns a copy of p with the supplied fields overwritten
func (u PlatoUpdate) Apply(p Plato) Plato {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Precio != nil {
		p.Precio = *u.Precio
	}
	return p
}

// DeleteResponse confirms a removed plato
type DeleteResponse struct {
	Message string `json:"message"`
}
