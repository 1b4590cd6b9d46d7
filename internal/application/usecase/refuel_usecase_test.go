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

// fakeRefuelRepo implementa RefuelRepository en memoria y registra los
// argumentos de MonthlyFuelTotals.
type fakeRefuelRepo struct {
	repository.RefuelRepository

	totals    map[string]float64
	gotSince  time.Time
	gotFilter scope.Filter
}

func (f *fakeRefuelRepo) MonthlyFuelTotals(_ context.Context, fl scope.Filter, since time.Time) (map[string]float64, error) {
	f.gotFilter = fl
	f.gotSince = since
	return f.totals, nil
}

func statsUsecaseAt(now time.Time, totals map[string]float64) (*RefuelUsecase, *fakeRefuelRepo) {
	repo := &fakeRefuelRepo{totals: totals}
	uc := NewRefuelUsecase(repo, nil)
	uc.now = func() time.Time { return now }
	return uc, repo
}

func TestYearlyStats_DoceMesesMasRecientePrimero(t *testing.T) {
	// Mitad de marzo 2026: la ventana cubre abril 2025 a marzo 2026.
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	uc, repo := statsUsecaseAt(now, map[string]float64{
		"03/26": 120.456,
		"01/26": 40,
		"04/25": 10.004,
	})
	actor := &entity.User{ID: "u-1", Role: entity.RoleAdmin}

	stats, err := uc.YearlyStats(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, stats, 12, "siempre doce entradas, con o sin repostajes")

	assert.Equal(t, "03/26", stats[0].MonthYear, "el mes actual va primero")
	assert.Equal(t, "04/25", stats[11].MonthYear, "el mes más antiguo va último")

	assert.Equal(t, 120.46, stats[0].TotalFuel, "el total se redondea a dos decimales")
	assert.Equal(t, 0.0, stats[1].TotalFuel, "febrero sin repostajes vale cero")
	assert.Equal(t, 40.0, stats[2].TotalFuel)
	assert.Equal(t, 10.0, stats[11].TotalFuel)

	wantSince := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantSince, repo.gotSince,
		"la consulta arranca en el primer día del mes más antiguo de la ventana")
}

func TestYearlyStats_EtiquetasContinuasCruzandoElAno(t *testing.T) {
	now := time.Date(2026, time.January, 31, 23, 59, 0, 0, time.UTC)
	uc, _ := statsUsecaseAt(now, nil)
	actor := &entity.User{ID: "u-1", Role: entity.RoleAdmin}

	stats, err := uc.YearlyStats(context.Background(), actor)
	require.NoError(t, err)

	want := []string{
		"01/26", "12/25", "11/25", "10/25", "09/25", "08/25",
		"07/25", "06/25", "05/25", "04/25", "03/25", "02/25",
	}
	for i, w := range want {
		assert.Equal(t, w, stats[i].MonthYear)
	}
}

func TestYearlyStats_AplicaElScopeDelActor(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	uc, repo := statsUsecaseAt(now, nil)
	worker := &entity.User{ID: "u-w", CompanyID: "c-1", Role: entity.RoleWorker}

	_, err := uc.YearlyStats(context.Background(), worker)
	require.NoError(t, err)

	frag, args := repo.gotFilter.SQL(1)
	assert.Equal(t, "user_id = $1", frag, "un worker solo agrega sus propios repostajes")
	assert.Equal(t, []any{"u-w"}, args)
}
