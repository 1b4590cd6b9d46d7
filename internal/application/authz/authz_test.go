package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow-api/internal/application/authz"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
)

func userWithRole(r entity.Role) *entity.User {
	return &entity.User{ID: "u-1", CompanyID: "c-1", Role: r}
}

func TestRequireRole_RolPermitidoPasa(t *testing.T) {
	err := authz.RequireRole(userWithRole(entity.RoleManager), entity.RoleAdmin, entity.RoleManager)
	assert.NoError(t, err, "manager debe pasar una puerta admin|manager")
}

func TestRequireRole_RolNoPermitidoFalla(t *testing.T) {
	err := authz.RequireRole(userWithRole(entity.RoleWorker), entity.RoleAdmin, entity.RoleManager)

	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr, "worker debe recibir PermissionError")
}

func TestRequireRole_RolDesconocidoFalla(t *testing.T) {
	err := authz.RequireRole(userWithRole(entity.Role("intruso")), entity.RoleAdmin)
	assert.Error(t, err)
}

func TestCanAssignRole_AdminAsignaCualquiera(t *testing.T) {
	actor := userWithRole(entity.RoleAdmin)
	for _, r := range []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleWorker} {
		assert.NoError(t, authz.CanAssignRole(actor, r))
	}
}

func TestCanAssignRole_ManagerSoloWorkers(t *testing.T) {
	actor := userWithRole(entity.RoleManager)

	assert.NoError(t, authz.CanAssignRole(actor, entity.RoleWorker))
	assert.Error(t, authz.CanAssignRole(actor, entity.RoleManager),
		"manager no puede crear otro manager")
	assert.Error(t, authz.CanAssignRole(actor, entity.RoleAdmin),
		"manager no puede crear un admin")
}

func TestCanAssignRole_WorkerNoAsignaNada(t *testing.T) {
	actor := userWithRole(entity.RoleWorker)
	for _, r := range []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleWorker} {
		assert.Error(t, authz.CanAssignRole(actor, r))
	}
}
