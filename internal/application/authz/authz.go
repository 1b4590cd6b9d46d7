// Package authz implementa la puerta gruesa de acceso por rol, independiente
// de la propiedad por fila: lista blanca de roles para operaciones
// privilegiadas y la regla suplementaria de asignación de roles.
package authz

import (
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
)

// RequireRole falla con PermissionError si el rol del actor no está en la
// lista permitida. No revela nada del recurso subyacente.
func RequireRole(actor *entity.User, allowed ...entity.Role) error {
	for _, r := range allowed {
		if actor.Role == r {
			return nil
		}
	}
	return domain.NewPermissionError()
}

// CanAssignRole valida el rol que el actor quiere dar a un usuario nuevo o
// actualizado: un admin asigna cualquiera, un manager solo puede crear
// workers, un worker ninguno.
func CanAssignRole(actor *entity.User, newRole entity.Role) error {
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleManager:
		if newRole != entity.RoleWorker {
			return domain.NewPermissionError()
		}
		return nil
	case entity.RoleWorker:
		return domain.NewPermissionError()
	default:
		return domain.NewPermissionError()
	}
}
