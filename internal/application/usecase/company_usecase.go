// Package usecase implementa la lógica de aplicación de la flota: CRUD por
// entidad con visibilidad por fila, validación de referencias dentro de la
// transacción de escritura y las agregaciones de repostajes, pólizas y
// reservas.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// CompanyUsecase gestiona empresas.
type CompanyUsecase struct {
	companies repository.CompanyRepository
	uow       repository.UnitOfWork
}

func NewCompanyUsecase(companies repository.CompanyRepository, uow repository.UnitOfWork) *CompanyUsecase {
	return &CompanyUsecase{companies: companies, uow: uow}
}

// Create da de alta una empresa. Cualquier usuario autenticado puede crearla;
// IsInternal por defecto true.
func (uc *CompanyUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	c := &entity.Company{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		PostCode:    req.PostCode,
		Address1:    req.Address1,
		Address2:    req.Address2,
		City:        req.City,
		Country:     req.Country,
		NIP:         req.NIP,
		IsInternal:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsInternal != nil {
		c.IsInternal = *req.IsInternal
	}

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Companies.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	resp := toCompanyResponse(c)
	return &resp, nil
}

// Get devuelve la empresa si está dentro del alcance del actor.
func (uc *CompanyUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.CompanyResponse, error) {
	c, err := uc.companies.GetByID(ctx, scope.Companies(actor), id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCompanyResponse(c)
	return &resp, nil
}

// List devuelve las empresas visibles para el actor, paginadas.
func (uc *CompanyUsecase) List(ctx context.Context, actor *entity.User, p repository.CompanyListParams, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	items, err := uc.companies.List(ctx, scope.Companies(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza la empresa si está dentro del alcance del actor.
func (uc *CompanyUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	c := &entity.Company{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		PostCode:    req.PostCode,
		Address1:    req.Address1,
		Address2:    req.Address2,
		City:        req.City,
		Country:     req.Country,
		NIP:         req.NIP,
		IsInternal:  true,
		UpdatedAt:   time.Now(),
	}
	if req.IsInternal != nil {
		c.IsInternal = *req.IsInternal
	}

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Companies.Update(ctx, scope.Companies(actor), c)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina la empresa si está dentro del alcance del actor.
func (uc *CompanyUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Companies.Delete(ctx, scope.Companies(actor), id)
	})
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Phone:       c.Phone,
		PostCode:    c.PostCode,
		Address1:    c.Address1,
		Address2:    c.Address2,
		City:        c.City,
		Country:     c.Country,
		NIP:         c.NIP,
		IsInternal:  c.IsInternal,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
