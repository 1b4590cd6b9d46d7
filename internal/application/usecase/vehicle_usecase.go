package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow-api/internal/application/authz"
	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/validate"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// FuelReportGenerator renderiza el reporte PDF de consumo de combustible de
// un vehículo a partir de sus repostajes.
type FuelReportGenerator interface {
	Generate(v *entity.Vehicle, refuels []repository.RefuelWithAuthor) ([]byte, error)
}

// VehicleUsecase gestiona vehículos y su reporte de combustible.
type VehicleUsecase struct {
	vehicles repository.VehicleRepository
	refuels  repository.RefuelRepository
	uow      repository.UnitOfWork
	reports  FuelReportGenerator
}

func NewVehicleUsecase(vehicles repository.VehicleRepository, refuels repository.RefuelRepository, uow repository.UnitOfWork, reports FuelReportGenerator) *VehicleUsecase {
	return &VehicleUsecase{vehicles: vehicles, refuels: refuels, uow: uow, reports: reports}
}

func (uc *VehicleUsecase) validateEnums(req dto.CreateVehicleRequest) error {
	switch entity.GearboxType(req.GearboxType) {
	case entity.GearboxAuto, entity.GearboxManual, entity.GearboxSemiAuto:
	default:
		return domain.NewValidationError("gearbox_type", "tipo de caja de cambios desconocido", req)
	}
	switch entity.VehicleAvailability(req.Availability) {
	case entity.AvailabilityInUse, entity.AvailabilityService, entity.AvailabilityAvailable,
		entity.AvailabilityDecommissioned, entity.AvailabilityBooked:
	default:
		return domain.NewValidationError("availability", "estado de disponibilidad desconocido", req)
	}
	switch entity.TireType(req.TireType) {
	case entity.TireSummer, entity.TireWinter, entity.TireAllSeason:
	default:
		return domain.NewValidationError("tire_type", "tipo de neumático desconocido", req)
	}
	return nil
}

func vehicleFromRequest(id string, req dto.CreateVehicleRequest) *entity.Vehicle {
	return &entity.Vehicle{
		ID:                 id,
		IDNumber:           req.IDNumber,
		VIN:                req.VIN,
		Weight:             req.Weight,
		RegistrationNumber: req.RegistrationNumber,
		Brand:              req.Brand,
		Model:              req.Model,
		ProductionYear:     req.ProductionYear,
		Kilometrage:        req.Kilometrage,
		GearboxType:        entity.GearboxType(req.GearboxType),
		Availability:       entity.VehicleAvailability(req.Availability),
		TireType:           entity.TireType(req.TireType),
		CompanyID:          req.CompanyID,
	}
}

// Create da de alta un vehículo. La empresa referenciada debe existir y el
// actor debe poder atar registros a ella.
func (uc *VehicleUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := uc.validateEnums(req); err != nil {
		return nil, err
	}
	if err := validate.CompanyReference(req, actor, req.CompanyID); err != nil {
		return nil, err
	}

	v := vehicleFromRequest(uuid.NewString(), req)
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefCompany, req.CompanyID); err != nil {
			return err
		}
		return tx.Vehicles.Create(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	resp := toVehicleResponse(v)
	return &resp, nil
}

// Get devuelve el vehículo si está dentro del alcance del actor.
func (uc *VehicleUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.VehicleResponse, error) {
	v, err := uc.vehicles.GetByID(ctx, scope.Vehicles(actor), id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	resp := toVehicleResponse(v)
	return &resp, nil
}

// List devuelve los vehículos visibles para el actor, con búsqueda y filtro
// de disponibilidad opcionales.
func (uc *VehicleUsecase) List(ctx context.Context, actor *entity.User, p repository.VehicleListParams, page dto.PageRequest) (*dto.VehicleListResponse, error) {
	page.DefaultPage()
	items, err := uc.vehicles.List(ctx, scope.Vehicles(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza el vehículo si está dentro del alcance del actor.
func (uc *VehicleUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := uc.validateEnums(req); err != nil {
		return nil, err
	}
	if err := validate.CompanyReference(req, actor, req.CompanyID); err != nil {
		return nil, err
	}

	v := vehicleFromRequest(id, req)
	v.UpdatedAt = time.Now()

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefCompany, req.CompanyID); err != nil {
			return err
		}
		return tx.Vehicles.Update(ctx, scope.Vehicles(actor), v)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina el vehículo si está dentro del alcance del actor.
func (uc *VehicleUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Vehicles.Delete(ctx, scope.Vehicles(actor), id)
	})
}

// FuelReport genera el PDF de consumo del vehículo. Reservado a admin y
// manager; el vehículo debe además estar dentro del alcance del actor.
// Devuelve el contenido del PDF y el nombre de archivo sugerido.
func (uc *VehicleUsecase) FuelReport(ctx context.Context, actor *entity.User, id string) ([]byte, string, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin, entity.RoleManager); err != nil {
		return nil, "", err
	}
	v, err := uc.vehicles.GetByID(ctx, scope.Vehicles(actor), id)
	if err != nil {
		return nil, "", err
	}
	if v == nil {
		return nil, "", domain.ErrNotFound
	}
	refuels, err := uc.refuels.ListByVehicle(ctx, v.ID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.reports.Generate(v, refuels)
	if err != nil {
		return nil, "", err
	}
	name := "vehicle_" + v.RegistrationNumber + "_report.pdf"
	return pdf, name, nil
}

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:                 v.ID,
		IDNumber:           v.IDNumber,
		VIN:                v.VIN,
		Weight:             v.Weight,
		RegistrationNumber: v.RegistrationNumber,
		Brand:              v.Brand,
		Model:              v.Model,
		ProductionYear:     v.ProductionYear,
		Kilometrage:        v.Kilometrage,
		GearboxType:        string(v.GearboxType),
		Availability:       string(v.Availability),
		TireType:           string(v.TireType),
		CompanyID:          v.CompanyID,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}
