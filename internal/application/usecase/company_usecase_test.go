package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// stubCompanyRepo guarda empresas en memoria.
type stubCompanyRepo struct {
	byID map[string]*entity.Company
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{byID: map[string]*entity.Company{}}
}

func (r *stubCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *stubCompanyRepo) GetByID(_ context.Context, _ scope.Filter, id string) (*entity.Company, error) {
	return r.byID[id], nil
}

func (r *stubCompanyRepo) List(context.Context, scope.Filter, repository.CompanyListParams, int, int) ([]*entity.Company, error) {
	return nil, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, _ scope.Filter, c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, _ scope.Filter, id string) error {
	delete(r.byID, id)
	return nil
}

func companyUsecaseWith(repo *stubCompanyRepo) *CompanyUsecase {
	return NewCompanyUsecase(repo, &stubUoW{set: repository.RepoSet{Companies: repo}})
}

func TestCompanyCreate_DefaultsInternaYDescripcionVacia(t *testing.T) {
	uc := companyUsecaseWith(newStubCompanyRepo())
	actor := &entity.User{ID: "u-w", CompanyID: "c-1", Role: entity.RoleWorker}

	out, err := uc.Create(context.Background(), actor, dto.CreateCompanyRequest{
		Name: "Flota Norte",
		NIP:  "1234567890",
	})
	require.NoError(t, err, "cualquier usuario autenticado puede crear una empresa")

	assert.True(t, out.IsInternal, "sin is_internal en el payload la empresa es interna")
	assert.Empty(t, out.Description, "la descripción por defecto es vacía")
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Flota Norte", out.Name)
}

func TestCompanyCreate_IsInternalExplicitoSeRespeta(t *testing.T) {
	repo := newStubCompanyRepo()
	uc := companyUsecaseWith(repo)
	actor := &entity.User{ID: "u-a", Role: entity.RoleAdmin}

	external := false
	out, err := uc.Create(context.Background(), actor, dto.CreateCompanyRequest{
		Name:       "Contratista Sur",
		IsInternal: &external,
	})
	require.NoError(t, err)

	assert.False(t, out.IsInternal, "is_internal=false explícito no debe pisarse con el default")
	assert.False(t, repo.byID[out.ID].IsInternal, "el valor persiste tal como se envió")
}
