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

// finishingWindow ventana hacia delante del listado de pólizas por vencer.
const finishingWindow = 31 * 24 * time.Hour

// InsuranceUsecase gestiona pólizas de seguro.
type InsuranceUsecase struct {
	insurances repository.InsuranceRepository
	uow        repository.UnitOfWork

	now func() time.Time // inyectable en tests
}

func NewInsuranceUsecase(insurances repository.InsuranceRepository, uow repository.UnitOfWork) *InsuranceUsecase {
	return &InsuranceUsecase{insurances: insurances, uow: uow, now: time.Now}
}

func insuranceFromRequest(id string, req dto.CreateInsuranceRequest) *entity.Insurance {
	return &entity.Insurance{
		ID:            id,
		Insurer:       req.Insurer,
		PolicyNumber:  req.PolicyNumber,
		DateFrom:      req.DateFrom,
		DateTo:        req.DateTo,
		Description:   req.Description,
		Price:         req.Price,
		InsuranceType: entity.InsuranceType(req.InsuranceType),
		VehicleID:     req.VehicleID,
		DocumentID:    req.DocumentID,
		CompanyID:     req.CompanyID,
	}
}

func (uc *InsuranceUsecase) validateRequest(req dto.CreateInsuranceRequest) error {
	switch entity.InsuranceType(req.InsuranceType) {
	case entity.InsuranceOC, entity.InsuranceAC, entity.InsuranceOCAC:
		return nil
	default:
		return domain.NewValidationError("insurance_type", "tipo de póliza desconocido", req)
	}
}

func (uc *InsuranceUsecase) validateRefs(ctx context.Context, tx repository.RepoSet, req dto.CreateInsuranceRequest) error {
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
		return err
	}
	if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefDocument, req.DocumentID); err != nil {
		return err
	}
	return validate.ObjReference(ctx, tx.Refs, req, repository.RefCompany, req.CompanyID)
}

// Create da de alta una póliza. Las referencias deben existir.
func (uc *InsuranceUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateInsuranceRequest) (*dto.InsuranceResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}
	i := insuranceFromRequest(uuid.NewString(), req)
	now := uc.now()
	i.CreatedAt = now
	i.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, req); err != nil {
			return err
		}
		return tx.Insurances.Create(ctx, i)
	})
	if err != nil {
		return nil, err
	}
	resp := toInsuranceResponse(i)
	return &resp, nil
}

// Get devuelve la póliza si está dentro del alcance del actor.
func (uc *InsuranceUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.InsuranceResponse, error) {
	i, err := uc.insurances.GetByID(ctx, scope.Insurances(actor), id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInsuranceResponse(i)
	return &resp, nil
}

// List devuelve las pólizas visibles para el actor, paginadas.
func (uc *InsuranceUsecase) List(ctx context.Context, actor *entity.User, p repository.InsuranceListParams, page dto.PageRequest) (*dto.InsuranceListResponse, error) {
	page.DefaultPage()
	items, err := uc.insurances.List(ctx, scope.Insurances(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InsuranceResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toInsuranceResponse(i))
	}
	return &dto.InsuranceListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Finishing devuelve las pólizas visibles cuyo vencimiento cae dentro de los
// próximos 31 días, ordenadas por fecha de vencimiento ascendente. Una póliza
// ya vencida no aparece.
func (uc *InsuranceUsecase) Finishing(ctx context.Context, actor *entity.User) ([]dto.InsuranceResponse, error) {
	from := uc.now()
	to := from.Add(finishingWindow)
	items, err := uc.insurances.Finishing(ctx, scope.Insurances(actor), from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InsuranceResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toInsuranceResponse(i))
	}
	return out, nil
}

// Update reemplaza la póliza si está dentro del alcance del actor.
func (uc *InsuranceUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateInsuranceRequest) (*dto.InsuranceResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}
	i := insuranceFromRequest(id, req)
	i.UpdatedAt = uc.now()

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := uc.validateRefs(ctx, tx, req); err != nil {
			return err
		}
		return tx.Insurances.Update(ctx, scope.Insurances(actor), i)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina la póliza si está dentro del alcance del actor.
func (uc *InsuranceUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Insurances.Delete(ctx, scope.Insurances(actor), id)
	})
}

func toInsuranceResponse(i *entity.Insurance) dto.InsuranceResponse {
	return dto.InsuranceResponse{
		ID:            i.ID,
		Insurer:       i.Insurer,
		PolicyNumber:  i.PolicyNumber,
		DateFrom:      i.DateFrom,
		DateTo:        i.DateTo,
		Description:   i.Description,
		Price:         i.Price,
		InsuranceType: string(i.InsuranceType),
		VehicleID:     i.VehicleID,
		DocumentID:    i.DocumentID,
		CompanyID:     i.CompanyID,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
