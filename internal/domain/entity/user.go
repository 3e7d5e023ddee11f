package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleChef        = "chef"
	RoleAlmacenista = "almacenista"
)

// User representa un usuario del sistema (pertenece a un Project).
type User struct {
	ID           string
	ProjectID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, chef, almacenista
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
