// Package validate implementa la validación de referencias de claves
// foráneas previa a toda escritura: existencia de la fila referenciada y
// permiso del actor para atar registros a ese usuario o empresa.
//
// Las comprobaciones corren dentro de la transacción de escritura y antes
// del primer INSERT/UPDATE; si alguna falla no se persiste nada.
package validate

import (
	"context"
	"fmt"

	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// ObjReference comprueba que la fila referenciada existe. Un id vacío pasa
// (la referencia es opcional); un id inexistente produce ValidationError con
// el campo ofensivo y el payload enviado.
func ObjReference(ctx context.Context, refs repository.ReferenceChecker, input any, target repository.Ref, id string) error {
	if id == "" {
		return nil
	}
	ok, err := refs.Exists(ctx, target, id)
	if err != nil {
		return err
	}
	if !ok {
		msg := fmt.Sprintf("el %s especificado no existe", string(target))
		return domain.NewValidationError(target.Field(), msg, input)
	}
	return nil
}

// UserReference comprueba que el actor puede atar un registro al usuario
// referenciado: un worker solo a sí mismo; un manager solo a usuarios de su
// propia empresa. Un user_id vacío pasa.
func UserReference(ctx context.Context, users repository.UserRepository, input any, actor *entity.User, userID string) error {
	if userID == "" {
		return nil
	}
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleWorker:
		if userID != actor.ID {
			return domain.NewPermissionError()
		}
		return nil
	case entity.RoleManager:
		ref, err := users.GetByID(ctx, scope.All(), userID)
		if err != nil {
			return err
		}
		if ref == nil || ref.CompanyID != actor.CompanyID {
			return domain.NewPermissionError()
		}
		return nil
	default:
		return domain.NewPermissionError()
	}
}

// CompanyReference comprueba que el actor puede atar un registro a la
// empresa referenciada: worker y manager solo a la propia. Un company_id
// vacío pasa.
func CompanyReference(input any, actor *entity.User, companyID string) error {
	if companyID == "" {
		return nil
	}
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleManager, entity.RoleWorker:
		if companyID != actor.CompanyID {
			return domain.NewPermissionError()
		}
		return nil
	default:
		return domain.NewPermissionError()
	}
}
