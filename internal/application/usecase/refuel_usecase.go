package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/validate"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// RefuelUsecase gestiona repostajes y sus estadísticas mensuales.
type RefuelUsecase struct {
	refuels repository.RefuelRepository
	uow     repository.UnitOfWork

	now func() time.Time // inyectable en tests
}

func NewRefuelUsecase(refuels repository.RefuelRepository, uow repository.UnitOfWork) *RefuelUsecase {
	return &RefuelUsecase{refuels: refuels, uow: uow, now: time.Now}
}

func refuelFromRequest(id string, req dto.CreateRefuelRequest, now time.Time) *entity.Refuel {
	r := &entity.Refuel{
		ID:                  id,
		Date:                now,
		FuelAmount:          req.FuelAmount,
		Price:               req.Price,
		KilometrageAtRefuel: req.KilometrageAtRefuel,
		GasStation:          req.GasStation,
		VehicleID:           req.VehicleID,
		DocumentID:          req.DocumentID,
		UserID:              req.UserID,
	}
	if req.Date != nil {
		r.Date = *req.Date
	}
	return r
}

func (uc *RefuelUsecase) validateRefs(ctx context.Context, tx repository.RepoSet, actor *entity.User, req dto.CreateRefuelRequest) error {
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
		return err
	}
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefDocument, req.DocumentID); err != nil {
		return err
	}
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefUser, req.UserID); err != nil {
		return err
	}
	return validate.UserReference(ctx, tx.Users, req, actor, req.UserID)
}

// Create da de alta un repostaje. Las referencias deben existir y el actor
// debe poder atar el repostaje al usuario indicado.
func (uc *RefuelUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateRefuelRequest) (*dto.RefuelResponse, error) {
	now := uc.now()
	r := refuelFromRequest(uuid.NewString(), req, now)
	if r.UserID == "" {
		r.UserID = actor.ID
	}
	r.CreatedAt = now
	r.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, actor, req); err != nil {
			return err
		}
		return tx.Refuels.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	resp := toRefuelResponse(r)
	return &resp, nil
}

// Get devuelve el repostaje si está dentro del alcance del actor.
func (uc *RefuelUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.RefuelResponse, error) {
	r, err := uc.refuels.GetByID(ctx, scope.Refuels(actor), id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	resp := toRefuelResponse(r)
	return &resp, nil
}

// List devuelve los repostajes visibles para el actor, paginados.
func (uc *RefuelUsecase) List(ctx context.Context, actor *entity.User, p repository.RefuelListParams, page dto.PageRequest) (*dto.RefuelListResponse, error) {
	page.DefaultPage()
	items, err := uc.refuels.List(ctx, scope.Refuels(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RefuelResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toRefuelResponse(r))
	}
	return &dto.RefuelListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza el repostaje si está dentro del alcance del actor.
func (uc *RefuelUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateRefuelRequest) (*dto.RefuelResponse, error) {
	now := uc.now()
	r := refuelFromRequest(id, req, now)
	if r.UserID == "" {
		r.UserID = actor.ID
	}
	r.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, actor, req); err != nil {
			return err
		}
		return tx.Refuels.Update(ctx, scope.Refuels(actor), r)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina el repostaje si está dentro del alcance del actor.
func (uc *RefuelUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Refuels.Delete(ctx, scope.Refuels(actor), id)
	})
}

// YearlyStats devuelve el total de combustible de los últimos 12 meses
// visibles para el actor: una entrada por mes etiquetada MM/YY, de la más
// reciente a la más antigua, con cero en los meses sin repostajes y el total
// redondeado a dos decimales.
func (uc *RefuelUsecase) YearlyStats(ctx context.Context, actor *entity.User) ([]dto.RefuelStat, error) {
	now := uc.now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	since := anchor.AddDate(0, -11, 0)

	totals, err := uc.refuels.MonthlyFuelTotals(ctx, scope.Refuels(actor), since)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.RefuelStat, 0, 12)
	for i := 0; i < 12; i++ {
		label := anchor.AddDate(0, -i, 0).Format("01/06")
		stats = append(stats, dto.RefuelStat{
			MonthYear: label,
			TotalFuel: math.Round(totals[label]*100) / 100,
		})
	}
	return stats, nil
}

func toRefuelResponse(r *entity.Refuel) dto.RefuelResponse {
	return dto.RefuelResponse{
		ID:                  r.ID,
		Date:                r.Date,
		FuelAmount:          r.FuelAmount,
		Price:               r.Price,
		KilometrageAtRefuel: r.KilometrageAtRefuel,
		GasStation:          r.GasStation,
		VehicleID:           r.VehicleID,
		DocumentID:          r.DocumentID,
		UserID:              r.UserID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
