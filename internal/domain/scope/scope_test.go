package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

func admin() *entity.User {
	return &entity.User{ID: "u-admin", Role: entity.RoleAdmin}
}

func manager() *entity.User {
	return &entity.User{ID: "u-mgr", CompanyID: "c-1", Role: entity.RoleManager}
}

func worker() *entity.User {
	return &entity.User{ID: "u-wrk", CompanyID: "c-1", Role: entity.RoleWorker}
}

func unknown() *entity.User {
	return &entity.User{ID: "u-x", CompanyID: "c-1", Role: entity.Role("intruso")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter.SQL
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterSQL_RenumeraPlaceholders(t *testing.T) {
	var f scope.Filter
	f.Where("company_id = ?", "c-1")
	f.Where("role <> ?", "admin")

	frag, args := f.SQL(3)
	assert.Equal(t, "company_id = $3 AND role <> $4", frag,
		"los '?' deben renumerarse desde el inicio indicado")
	assert.Equal(t, []any{"c-1", "admin"}, args)
}

func TestFilterSQL_VacioDevuelveNada(t *testing.T) {
	frag, args := scope.All().SQL(1)
	assert.Empty(t, frag)
	assert.Nil(t, args)
}

func TestFilterSQL_NoneNoDejaPasarFilas(t *testing.T) {
	frag, args := scope.None().SQL(1)
	assert.Equal(t, "FALSE", frag)
	assert.Empty(t, args)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas por entidad
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_AdminVeTodas(t *testing.T) {
	assert.True(t, scope.Companies(admin()).IsEmpty())
}

func TestCompanies_ManagerYWorkerSoloLaPropia(t *testing.T) {
	for _, u := range []*entity.User{manager(), worker()} {
		frag, args := scope.Companies(u).SQL(1)
		assert.Equal(t, "id = $1", frag)
		assert.Equal(t, []any{"c-1"}, args)
	}
}

func TestUsers_ManagerExcluyeAdmins(t *testing.T) {
	frag, args := scope.Users(manager()).SQL(1)
	assert.Equal(t, "company_id = $1 AND role <> $2", frag)
	assert.Equal(t, []any{"c-1", "admin"}, args)
}

func TestVehicles_WorkerSoloSuEmpresa(t *testing.T) {
	frag, args := scope.Vehicles(worker()).SQL(1)
	assert.Equal(t, "company_id = $1", frag)
	assert.Equal(t, []any{"c-1"}, args)
}

func TestDocumentsYEvents_SinFiltroParaRolesValidos(t *testing.T) {
	for _, u := range []*entity.User{admin(), manager(), worker()} {
		assert.True(t, scope.Documents(u).IsEmpty(),
			"los documentos son visibles para todo usuario autenticado")
		assert.True(t, scope.Events(u).IsEmpty(),
			"los eventos son visibles para todo usuario autenticado")
	}
}

func TestInsurances_ManagerPorVehiculosDeSuEmpresa(t *testing.T) {
	frag, args := scope.Insurances(manager()).SQL(2)
	assert.Equal(t, "vehicle_id IN (SELECT id FROM vehicles WHERE company_id = $2)", frag)
	assert.Equal(t, []any{"c-1"}, args)
}

func TestRefuels_PorRol(t *testing.T) {
	assert.True(t, scope.Refuels(admin()).IsEmpty())

	frag, args := scope.Refuels(manager()).SQL(1)
	assert.Equal(t, "user_id IN (SELECT id FROM users WHERE company_id = $1)", frag)
	assert.Equal(t, []any{"c-1"}, args)

	frag, args = scope.Refuels(worker()).SQL(1)
	assert.Equal(t, "user_id = $1", frag)
	assert.Equal(t, []any{"u-wrk"}, args)
}

func TestReservations_NoAdminSoloPropias(t *testing.T) {
	frag, args := scope.Reservations(worker()).SQL(1)
	assert.Equal(t, "user_id = $1", frag)
	assert.Equal(t, []any{"u-wrk"}, args)
}

func TestComments_ManagerIncluyeSubordinados(t *testing.T) {
	frag, args := scope.Comments(manager()).SQL(1)
	require.Equal(t,
		"(user_id = $1 OR user_id IN (SELECT id FROM users WHERE company_id = $2 AND role = $3))",
		frag)
	assert.Equal(t, []any{"u-mgr", "c-1", "worker"}, args)
}

func TestComments_WorkerSoloPropios(t *testing.T) {
	frag, args := scope.Comments(worker()).SQL(1)
	assert.Equal(t, "user_id = $1", frag)
	assert.Equal(t, []any{"u-wrk"}, args)
}

// Un rol desconocido nunca ve filas, en ninguna entidad.
func TestRolDesconocido_NadaVisible(t *testing.T) {
	u := unknown()
	for name, f := range map[string]scope.Filter{
		"companies":    scope.Companies(u),
		"users":        scope.Users(u),
		"vehicles":     scope.Vehicles(u),
		"documents":    scope.Documents(u),
		"refuels":      scope.Refuels(u),
		"events":       scope.Events(u),
		"insurances":   scope.Insurances(u),
		"reservations": scope.Reservations(u),
		"comments":     scope.Comments(u),
	} {
		frag, _ := f.SQL(1)
		assert.Equal(t, "FALSE", frag, "entidad %s debe quedar vacía para un rol desconocido", name)
	}
}
