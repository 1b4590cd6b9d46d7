package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// fakeInsuranceRepo registra los límites de la ventana pasada a Finishing.
type fakeInsuranceRepo struct {
	repository.InsuranceRepository

	items     []*entity.Insurance
	gotFrom   time.Time
	gotTo     time.Time
	gotFilter scope.Filter
}

func (f *fakeInsuranceRepo) Finishing(_ context.Context, fl scope.Filter, from, to time.Time) ([]*entity.Insurance, error) {
	f.gotFilter = fl
	f.gotFrom = from
	f.gotTo = to
	return f.items, nil
}

func TestFinishing_VentanaDe31Dias(t *testing.T) {
	now := time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeInsuranceRepo{items: []*entity.Insurance{
		{ID: "i-1", Insurer: "Warta", DateTo: now.Add(48 * time.Hour)},
	}}
	uc := NewInsuranceUsecase(repo, nil)
	uc.now = func() time.Time { return now }
	actor := &entity.User{ID: "u-1", Role: entity.RoleAdmin}

	out, err := uc.Finishing(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "i-1", out[0].ID)

	assert.Equal(t, now, repo.gotFrom, "la ventana abre en el instante actual")
	assert.Equal(t, now.Add(31*24*time.Hour), repo.gotTo, "y cierra 31 días después")
}

func TestFinishing_AplicaElScopeDelActor(t *testing.T) {
	repo := &fakeInsuranceRepo{}
	uc := NewInsuranceUsecase(repo, nil)
	manager := &entity.User{ID: "u-m", CompanyID: "c-1", Role: entity.RoleManager}

	_, err := uc.Finishing(context.Background(), manager)
	require.NoError(t, err)

	frag, args := repo.gotFilter.SQL(1)
	assert.Equal(t, "vehicle_id IN (SELECT id FROM vehicles WHERE company_id = $1)", frag)
	assert.Equal(t, []any{"c-1"}, args)
}
