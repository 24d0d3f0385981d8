package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin         = "admin"
	RoleRepresentante = "representante"
)

// Estados de User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un representante comercial (dueño de sus pastas, clientes y ventas).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, representante
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active indica si el usuario puede iniciar sesión.
func (u *User) Active() bool { return u != nil && u.Status == UserStatusActive }
