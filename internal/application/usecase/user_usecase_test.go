package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// stubUserRepo guarda usuarios en memoria, indexados por id y por email.
type stubUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
	created []*entity.User
}

func newStubUserRepo(seed ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
	for _, u := range seed {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	r.created = append(r.created, u)
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, _ scope.Filter, id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *stubUserRepo) List(context.Context, scope.Filter, repository.UserListParams, int, int) ([]*entity.User, error) {
	return nil, nil
}

func (r *stubUserRepo) Update(_ context.Context, _ scope.Filter, u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, _ scope.Filter, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// stubRefs da por existentes los ids listados.
type stubRefs struct {
	existing map[repository.Ref]map[string]bool
}

func (s *stubRefs) Exists(_ context.Context, target repository.Ref, id string) (bool, error) {
	return s.existing[target][id], nil
}

// stubUoW ejecuta fn directamente con el RepoSet dado, sin transacción real.
type stubUoW struct {
	set repository.RepoSet
}

func (s *stubUoW) Run(ctx context.Context, fn func(tx repository.RepoSet) error) error {
	return fn(s.set)
}

func userUsecaseWith(users *stubUserRepo, refs *stubRefs) *UserUsecase {
	if refs == nil {
		refs = &stubRefs{}
	}
	return NewUserUsecase(users, &stubUoW{set: repository.RepoSet{Users: users, Refs: refs}})
}

func validCreateReq(email, role, companyID string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:     email,
		Name:      "Ana Prueba",
		Role:      role,
		CompanyID: companyID,
		Password1: "Abcdef1!",
		Password2: "Abcdef1!",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_WorkerNoPuedeCrear(t *testing.T) {
	uc := userUsecaseWith(newStubUserRepo(), nil)
	actor := &entity.User{ID: "u-w", CompanyID: "c-1", Role: entity.RoleWorker}

	_, err := uc.Create(context.Background(), actor, validCreateReq("nuevo@acme.test", "worker", ""))

	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr)
}

func TestUserCreate_ManagerSoloCreaWorkers(t *testing.T) {
	refs := &stubRefs{existing: map[repository.Ref]map[string]bool{
		repository.RefCompany: {"c-1": true},
	}}
	users := newStubUserRepo()
	uc := userUsecaseWith(users, refs)
	actor := &entity.User{ID: "u-m", CompanyID: "c-1", Role: entity.RoleManager}

	out, err := uc.Create(context.Background(), actor, validCreateReq("obrero@acme.test", "worker", "c-1"))
	require.NoError(t, err)
	assert.Equal(t, "worker", out.Role)
	require.Len(t, users.created, 1)
	assert.NotEqual(t, "Abcdef1!", users.created[0].PasswordHash,
		"la contraseña nunca se persiste en claro")

	_, err = uc.Create(context.Background(), actor, validCreateReq("jefe@acme.test", "manager", "c-1"))
	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr, "manager no puede dar de alta otro manager")
}

func TestUserCreate_RolDesconocidoFalla(t *testing.T) {
	uc := userUsecaseWith(newStubUserRepo(), nil)
	actor := &entity.User{ID: "u-a", Role: entity.RoleAdmin}

	_, err := uc.Create(context.Background(), actor, validCreateReq("x@acme.test", "superuser", ""))

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "role", vErr.Field)
}

func TestUserCreate_EmailDuplicadoEsErrorDeValidacion(t *testing.T) {
	users := newStubUserRepo(&entity.User{ID: "u-1", Email: "ocupado@acme.test"})
	uc := userUsecaseWith(users, nil)
	actor := &entity.User{ID: "u-a", Role: entity.RoleAdmin}
	req := validCreateReq("ocupado@acme.test", "worker", "")

	_, err := uc.Create(context.Background(), actor, req)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr, "el email duplicado es un error de validación, no un conflicto aparte")
	assert.Equal(t, "email", vErr.Field)
	assert.Equal(t, req, vErr.Input, "el payload enviado debe viajar en el error")
}

func TestUserCreate_EmpresaInexistenteFalla(t *testing.T) {
	uc := userUsecaseWith(newStubUserRepo(), &stubRefs{})
	actor := &entity.User{ID: "u-a", Role: entity.RoleAdmin}

	_, err := uc.Create(context.Background(), actor, validCreateReq("x@acme.test", "worker", "c-404"))

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "company_id", vErr.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_NoAdminSoloASiMismo(t *testing.T) {
	uc := userUsecaseWith(newStubUserRepo(), nil)
	actor := &entity.User{ID: "u-w", CompanyID: "c-1", Role: entity.RoleWorker}

	_, err := uc.Update(context.Background(), actor, "u-otro", validCreateReq("x@acme.test", "worker", ""))

	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr)
}

func TestUserUpdate_NoAdminNoPuedeCambiarseElRol(t *testing.T) {
	uc := userUsecaseWith(newStubUserRepo(), nil)
	actor := &entity.User{ID: "u-w", CompanyID: "c-1", Role: entity.RoleWorker}

	_, err := uc.Update(context.Background(), actor, "u-w", validCreateReq("x@acme.test", "manager", ""))

	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr, "un worker no puede autoascenderse")
}

func TestUserUpdate_EmailDeOtroUsuarioChoca(t *testing.T) {
	users := newStubUserRepo(
		&entity.User{ID: "u-1", Email: "mio@acme.test", CompanyID: "c-1", Role: entity.RoleWorker},
		&entity.User{ID: "u-2", Email: "ajeno@acme.test", CompanyID: "c-1", Role: entity.RoleWorker},
	)
	uc := userUsecaseWith(users, nil)
	actor := &entity.User{ID: "u-a", Role: entity.RoleAdmin}

	_, err := uc.Update(context.Background(), actor, "u-1", validCreateReq("ajeno@acme.test", "worker", ""))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	// conservar el propio email no choca
	_, err = uc.Update(context.Background(), actor, "u-1", validCreateReq("mio@acme.test", "worker", ""))
	assert.NoError(t, err)
}

func TestUserDelete_NoAdminSoloASiMismo(t *testing.T) {
	users := newStubUserRepo(&entity.User{ID: "u-w", Email: "w@acme.test", CompanyID: "c-1", Role: entity.RoleWorker})
	uc := userUsecaseWith(users, nil)
	actor := &entity.User{ID: "u-w", CompanyID: "c-1", Role: entity.RoleWorker}

	err := uc.Delete(context.Background(), actor, "u-otro")
	var pErr *domain.PermissionError
	assert.ErrorAs(t, err, &pErr)

	assert.NoError(t, uc.Delete(context.Background(), actor, "u-w"))
}
