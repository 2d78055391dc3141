package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// User representa una identidad del sistema. Username es único sin distinguir
// mayúsculas/minúsculas entre todos los registros, activos o no.
type User struct {
	ID           string
	Username     string
	DisplayName  string
	Email        string // opcional
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, empleado
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
