package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// User representa un usuario del sistema. Solo admin puede subir y borrar productos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, cliente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
