package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/validate"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// ReservationUsecase gestiona reservas de vehículos.
type ReservationUsecase struct {
	reservations repository.ReservationRepository
	uow          repository.UnitOfWork

	now func() time.Time // inyectable en tests
}

func NewReservationUsecase(reservations repository.ReservationRepository, uow repository.UnitOfWork) *ReservationUsecase {
	return &ReservationUsecase{reservations: reservations, uow: uow, now: time.Now}
}

func reservationFromRequest(id string, req dto.CreateReservationRequest, now time.Time) *entity.Reservation {
	r := &entity.Reservation{
		ID:              id,
		DateFrom:        req.DateFrom,
		DateTo:          req.DateTo,
		ReservationDate: now,
		VehicleID:       req.VehicleID,
		UserID:          req.UserID,
	}
	if req.ReservationDate != nil {
		r.ReservationDate = *req.ReservationDate
	}
	return r
}

func (uc *ReservationUsecase) validateRefs(ctx context.Context, tx repository.RepoSet, actor *entity.User, req dto.CreateReservationRequest) error {
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
		return err
	}
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefUser, req.UserID); err != nil {
		return err
	}
	return validate.UserReference(ctx, tx.Users, req, actor, req.UserID)
}

// Create da de alta una reserva. El actor debe poder atarla al usuario
// indicado.
func (uc *ReservationUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	now := uc.now()
	r := reservationFromRequest(uuid.NewString(), req, now)
	if r.UserID == "" {
		r.UserID = actor.ID
	}
	r.CreatedAt = now
	r.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, actor, req); err != nil {
			return err
		}
		return tx.Reservations.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	resp := toReservationResponse(r)
	return &resp, nil
}

// Get devuelve la reserva si está dentro del alcance del actor.
func (uc *ReservationUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.ReservationResponse, error) {
	r, err := uc.reservations.GetByID(ctx, scope.Reservations(actor), id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	resp := toReservationResponse(r)
	return &resp, nil
}

// List devuelve las reservas visibles para el actor, paginadas.
func (uc *ReservationUsecase) List(ctx context.Context, actor *entity.User, p repository.ReservationListParams, page dto.PageRequest) (*dto.ReservationListResponse, error) {
	page.DefaultPage()
	items, err := uc.reservations.List(ctx, scope.Reservations(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReservationResponse(r))
	}
	return &dto.ReservationListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Upcoming devuelve las reservas visibles cuya fecha de inicio es posterior
// al momento actual, ordenadas por inicio ascendente.
func (uc *ReservationUsecase) Upcoming(ctx context.Context, actor *entity.User) ([]dto.ReservationResponse, error) {
	items, err := uc.reservations.Upcoming(ctx, scope.Reservations(actor), uc.now())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReservationResponse(r))
	}
	return out, nil
}

// Update reemplaza la reserva si está dentro del alcance del actor.
func (uc *ReservationUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	now := uc.now()
	r := reservationFromRequest(id, req, now)
	if r.UserID == "" {
		r.UserID = actor.ID
	}
	r.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, actor, req); err != nil {
			return err
		}
		return tx.Reservations.Update(ctx, scope.Reservations(actor), r)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina la reserva si está dentro del alcance del actor.
func (uc *ReservationUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Reservations.Delete(ctx, scope.Reservations(actor), id)
	})
}

func toReservationResponse(r *entity.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:              r.ID,
		DateFrom:        r.DateFrom,
		DateTo:          r.DateTo,
		ReservationDate: r.ReservationDate,
		VehicleID:       r.VehicleID,
		UserID:          r.UserID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
