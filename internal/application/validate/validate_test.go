package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-api/internal/application/validate"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeRefs responde a Exists con el conjunto de ids conocidos.
type fakeRefs struct {
	existing map[repository.Ref]map[string]bool
}

func (f *fakeRefs) Exists(_ context.Context, target repository.Ref, id string) (bool, error) {
	return f.existing[target][id], nil
}

// fakeUsers implementa UserRepository sobre un mapa en memoria. Solo GetByID
// se usa en estas pruebas.
type fakeUsers struct {
	byID map[string]*entity.User
}

func (f *fakeUsers) Create(context.Context, *entity.User) error { return nil }

func (f *fakeUsers) GetByID(_ context.Context, _ scope.Filter, id string) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }

func (f *fakeUsers) List(context.Context, scope.Filter, repository.UserListParams, int, int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUsers) Update(context.Context, scope.Filter, *entity.User) error { return nil }
func (f *fakeUsers) Delete(context.Context, scope.Filter, string) error       { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// ObjReference
// ──────────────────────────────────────────────────────────────────────────────

func TestObjReference_IdVacioPasa(t *testing.T) {
	refs := &fakeRefs{existing: map[repository.Ref]map[string]bool{}}
	assert.NoError(t, validate.ObjReference(context.Background(), refs, nil, repository.RefVehicle, ""))
}

func TestObjReference_ExistentePasa(t *testing.T) {
	refs := &fakeRefs{existing: map[repository.Ref]map[string]bool{
		repository.RefVehicle: {"v-1": true},
	}}
	assert.NoError(t, validate.ObjReference(context.Background(), refs, nil, repository.RefVehicle, "v-1"))
}

func TestObjReference_InexistenteDevuelveValidationError(t *testing.T) {
	refs := &fakeRefs{existing: map[repository.Ref]map[string]bool{}}
	input := map[string]string{"vehicle_id": "v-404"}

	err := validate.ObjReference(context.Background(), refs, input, repository.RefVehicle, "v-404")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "vehicle_id", vErr.Field, "el campo ofensivo debe ser el nombre de la FK")
	assert.Equal(t, input, vErr.Input, "el payload enviado debe viajar en el error")
}

// ──────────────────────────────────────────────────────────────────────────────
// UserReference
// ──────────────────────────────────────────────────────────────────────────────

func TestUserReference_AdminAtaACualquiera(t *testing.T) {
	actor := &entity.User{ID: "u-a", Role: entity.RoleAdmin}
	err := validate.UserReference(context.Background(), &fakeUsers{}, nil, actor, "u-otro")
	assert.NoError(t, err)
}

func TestUserReference_WorkerSoloASiMismo(t *testing.T) {
	actor := &entity.User{ID: "u-w", CompanyID: "c-1", Role: entity.RoleWorker}

	assert.NoError(t, validate.UserReference(context.Background(), &fakeUsers{}, nil, actor, "u-w"))

	err := validate.UserReference(context.Background(), &fakeUsers{}, nil, actor, "u-otro")
	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr, "worker atando a otro usuario debe fallar con PermissionError")
}

func TestUserReference_ManagerSoloDentroDeSuEmpresa(t *testing.T) {
	actor := &entity.User{ID: "u-m", CompanyID: "c-1", Role: entity.RoleManager}
	users := &fakeUsers{byID: map[string]*entity.User{
		"u-mismo": {ID: "u-mismo", CompanyID: "c-1"},
		"u-ajeno": {ID: "u-ajeno", CompanyID: "c-2"},
	}}

	assert.NoError(t, validate.UserReference(context.Background(), users, nil, actor, "u-mismo"))

	err := validate.UserReference(context.Background(), users, nil, actor, "u-ajeno")
	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr, "manager no puede atar registros a usuarios de otra empresa")

	err = validate.UserReference(context.Background(), users, nil, actor, "u-fantasma")
	assert.Error(t, err, "un usuario inexistente tampoco pasa")
}

func TestUserReference_IdVacioPasa(t *testing.T) {
	actor := &entity.User{ID: "u-w", Role: entity.RoleWorker}
	assert.NoError(t, validate.UserReference(context.Background(), &fakeUsers{}, nil, actor, ""))
}

// ──────────────────────────────────────────────────────────────────────────────
// CompanyReference
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyReference_PorRol(t *testing.T) {
	adminU := &entity.User{ID: "u-a", Role: entity.RoleAdmin}
	mgr := &entity.User{ID: "u-m", CompanyID: "c-1", Role: entity.RoleManager}

	assert.NoError(t, validate.CompanyReference(nil, adminU, "c-99"))
	assert.NoError(t, validate.CompanyReference(nil, mgr, "c-1"))
	assert.NoError(t, validate.CompanyReference(nil, mgr, ""), "sin empresa referida no hay nada que validar")

	err := validate.CompanyReference(nil, mgr, "c-2")
	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr, "manager no puede atar registros a otra empresa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Email y Password
// ──────────────────────────────────────────────────────────────────────────────

func TestEmail(t *testing.T) {
	assert.NoError(t, validate.Email(nil, "ana@acme.test"))

	cases := map[string]string{
		"vacío":        "",
		"sin arroba":   "ana.acme.test",
		"con espacios": "ana @acme.test",
	}
	for name, email := range cases {
		err := validate.Email(nil, email)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr, "email %s debe fallar", name)
	}
}

func TestPassword_ValidaPasa(t *testing.T) {
	assert.NoError(t, validate.Password(nil, "Abcdef1!", "Abcdef1!"))
}

func TestPassword_Rechazos(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 string
		field  string
	}{
		{"vacía", "", "", "password1"},
		{"no coinciden", "Abcdef1!", "Abcdef1?", "password2"},
		{"demasiado corta", "Ab1!", "Ab1!", "password1"},
		{"con espacios", "Abcd ef1!", "Abcd ef1!", "password1"},
		{"sin mayúscula", "abcdef1!", "abcdef1!", "password1"},
		{"sin minúscula", "ABCDEF1!", "ABCDEF1!", "password1"},
		{"sin dígito", "Abcdefg!", "Abcdefg!", "password1"},
		{"sin especial", "Abcdefg1", "Abcdefg1", "password1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Password(nil, tc.p1, tc.p2)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}
