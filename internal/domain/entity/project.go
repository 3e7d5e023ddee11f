package entity

import "time"

// Project representa un proyecto/evento de catering. Todo el inventario
// (productos, recetas, menús y movimientos) está acotado a un proyecto.
type Project struct {
	ID        string
	Name      string
	Status    string // active, archived
	CreatedAt time.Time
	UpdatedAt time.Time
}
