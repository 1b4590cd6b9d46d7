package entity

import "time"

// Role rol de un usuario. Tipo cerrado: todo branch de scoping o
// autorización debe hacer switch exhaustivo sobre estas tres constantes.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWorker  Role = "worker"
)

// Valid indica si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleWorker:
		return true
	}
	return false
}

// User representa un usuario del sistema. CompanyID vacío solo está permitido
// para administradores (un admin no pertenece a ninguna empresa).
type User struct {
	ID           string
	CompanyID    string // "" = sin empresa (solo admin)
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
