package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetflow/fleetflow-api/internal/application/authz"
	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/validate"
	"github.com/fleetflow/fleetflow-api/internal/domain"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
	"github.com/fleetflow/fleetflow-api/internal/domain/scope"
)

// UserUsecase gestiona usuarios y sus credenciales.
type UserUsecase struct {
	users repository.UserRepository
	uow   repository.UnitOfWork
}

func NewUserUsecase(users repository.UserRepository, uow repository.UnitOfWork) *UserUsecase {
	return &UserUsecase{users: users, uow: uow}
}

// Create da de alta un usuario. Solo admin y manager pueden crear; un manager
// únicamente workers. El email debe ser único y la contraseña cumplir la
// complejidad mínima.
func (uc *UserUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authz.RequireRole(actor, entity.RoleAdmin, entity.RoleManager); err != nil {
		return nil, err
	}
	role := entity.Role(req.Role)
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "rol desconocido", req)
	}
	if err := authz.CanAssignRole(actor, role); err != nil {
		return nil, err
	}
	if err := validate.Email(req, req.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(req, req.Password1, req.Password2); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &entity.User{
		ID:           uuid.NewString(),
		CompanyID:    req.CompanyID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		existing, err := tx.Users.GetByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefCompany, req.CompanyID); err != nil {
			return err
		}
		return tx.Users.Create(ctx, u)
	})
	if err != nil {
		return nil, duplicateEmailAsValidation(err, req)
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Get devuelve el usuario si está dentro del alcance del actor.
func (uc *UserUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, scope.Users(actor), id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Me devuelve el perfil del actor autenticado, sin filtro de visibilidad.
func (uc *UserUsecase) Me(ctx context.Context, actorID string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, scope.All(), actorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// List devuelve los usuarios visibles para el actor, paginados.
func (uc *UserUsecase) List(ctx context.Context, actor *entity.User, p repository.UserListParams, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	items, err := uc.users.List(ctx, scope.Users(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza un usuario. Solo un admin o el propio usuario pueden
// actualizar; un no-admin no puede cambiarse el rol.
func (uc *UserUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if actor.Role != entity.RoleAdmin {
		if actor.ID != id {
			return nil, domain.NewPermissionError()
		}
		if req.Role != string(actor.Role) {
			return nil, domain.NewPermissionError()
		}
	}
	role := entity.Role(req.Role)
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "rol desconocido", req)
	}
	if err := validate.Email(req, req.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(req, req.Password1, req.Password2); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:           id,
		CompanyID:    req.CompanyID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		UpdatedAt:    time.Now(),
	}

	err = uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		// el email solo choca si pertenece a otro usuario
		existing, err := tx.Users.GetByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return domain.ErrEmailAlreadyExists
		}
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefCompany, req.CompanyID); err != nil {
			return err
		}
		return tx.Users.Update(ctx, scope.Users(actor), u)
	})
	if err != nil {
		return nil, duplicateEmailAsValidation(err, req)
	}
	return uc.Get(ctx, actor, id)
}

// duplicateEmailAsValidation convierte el centinela de email duplicado (del
// chequeo previo o de la violación de unicidad en la base) en un error de
// validación con el campo ofensivo y el payload enviado.
func duplicateEmailAsValidation(err error, input any) error {
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return domain.NewValidationError("email", "el email ya está registrado", input)
	}
	return err
}

// Delete elimina un usuario. Solo un admin o el propio usuario pueden borrar.
func (uc *UserUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	if actor.Role != entity.RoleAdmin && actor.ID != id {
		return domain.NewPermissionError()
	}
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Users.Delete(ctx, scope.Users(actor), id)
	})
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
