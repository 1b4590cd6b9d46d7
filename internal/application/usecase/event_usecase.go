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

// EventUsecase gestiona eventos de mantenimiento y servicio.
type EventUsecase struct {
	events repository.EventRepository
	uow    repository.UnitOfWork
}

func NewEventUsecase(events repository.EventRepository, uow repository.UnitOfWork) *EventUsecase {
	return &EventUsecase{events: events, uow: uow}
}

func eventFromRequest(id string, req dto.CreateEventRequest, now time.Time) *entity.Event {
	e := &entity.Event{
		ID:          id,
		EventType:   req.EventType,
		Date:        now,
		Description: req.Description,
		Price:       req.Price,
		VehicleID:   req.VehicleID,
		DocumentID:  req.DocumentID,
		CompanyID:   req.CompanyID,
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	return e
}

func (uc *EventUsecase) validateRefs(ctx context.Context, tx repository.RepoSet, req dto.CreateEventRequest) error {
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
		return err
	}
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefDocument, req.DocumentID); err != nil {
		return err
	}
	return validate.ObjReference(ctx, tx.Refs, req, repository.RefCompany, req.CompanyID)
}

// Create da de alta un evento. Las referencias deben existir.
func (uc *EventUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	now := time.Now()
	e := eventFromRequest(uuid.NewString(), req, now)
	e.CreatedAt = now
	e.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, req); err != nil {
			return err
		}
		return tx.Events.Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	resp := toEventResponse(e)
	return &resp, nil
}

// Get devuelve el evento. Los eventos no se filtran por empresa.
func (uc *EventUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.EventResponse, error) {
	e, err := uc.events.GetByID(ctx, scope.Events(actor), id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEventResponse(e)
	return &resp, nil
}

// List devuelve eventos paginados con filtros opcionales.
func (uc *EventUsecase) List(ctx context.Context, actor *entity.User, p repository.EventListParams, page dto.PageRequest) (*dto.EventListResponse, error) {
	page.DefaultPage()
	items, err := uc.events.List(ctx, scope.Events(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEventResponse(e))
	}
	return &dto.EventListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza el evento.
func (uc *EventUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	now := time.Now()
	e := eventFromRequest(id, req, now)
	e.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, req); err != nil {
			return err
		}
		return tx.Events.Update(ctx, scope.Events(actor), e)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina el evento.
func (uc *EventUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Events.Delete(ctx, scope.Events(actor), id)
	})
}

func toEventResponse(e *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		EventType:   e.EventType,
		Date:        e.Date,
		Description: e.Description,
		Price:       e.Price,
		VehicleID:   e.VehicleID,
		DocumentID:  e.DocumentID,
		CompanyID:   e.CompanyID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
