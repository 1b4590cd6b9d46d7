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

// CommentUsecase gestiona comentarios sobre vehículos.
type CommentUsecase struct {
	comments repository.CommentRepository
	uow      repository.UnitOfWork
}

func NewCommentUsecase(comments repository.CommentRepository, uow repository.UnitOfWork) *CommentUsecase {
	return &CommentUsecase{comments: comments, uow: uow}
}

func commentFromRequest(id string, req dto.CreateCommentRequest, now time.Time) *entity.Comment {
	c := &entity.Comment{
		ID:        id,
		Content:   req.Content,
		Date:      now,
		VehicleID: req.VehicleID,
		UserID:    req.UserID,
	}
	if req.Date != nil {
		c.Date = *req.Date
	}
	return c
}

// Create da de alta un comentario. El actor debe poder atarlo al usuario
// indicado.
func (uc *CommentUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	now := time.Now()
	c := commentFromRequest(uuid.NewString(), req, now)
	if c.UserID == "" {
		c.UserID = actor.ID
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
			return err
		}
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefUser, req.UserID); err != nil {
			return err
		}
		if err := validate.UserReference(ctx, tx.Users, req, actor, req.UserID); err != nil {
			return err
		}
		return tx.Comments.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	resp := toCommentResponse(c)
	return &resp, nil
}

// Get devuelve el comentario si está dentro del alcance del actor.
func (uc *CommentUsecase) Get(ctx context.Context, actor *entity.User, id string) (*dto.CommentResponse, error) {
	c, err := uc.comments.GetByID(ctx, scope.Comments(actor), id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCommentResponse(c)
	return &resp, nil
}

// List devuelve los comentarios visibles para el actor, paginados.
func (uc *CommentUsecase) List(ctx context.Context, actor *entity.User, p repository.CommentListParams, page dto.PageRequest) (*dto.CommentListResponse, error) {
	page.DefaultPage()
	items, err := uc.comments.List(ctx, scope.Comments(actor), p, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCommentResponse(c))
	}
	return &dto.CommentListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update reemplaza el comentario si está dentro del alcance del actor. A
// diferencia del alta, no se re-valida la propiedad del usuario referenciado:
// el filtro de visibilidad ya restringe qué comentarios puede tocar el actor.
func (uc *CommentUsecase) Update(ctx context.Context, actor *entity.User, id string, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	now := time.Now()
	c := commentFromRequest(id, req, now)
	if c.UserID == "" {
		c.UserID = actor.ID
	}
	c.UpdatedAt = now

	err := uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefVehicle, req.VehicleID); err != nil {
			return err
		}
		if err := validate.ObjReference(ctx, tx.Refs, req, repository.RefUser, req.UserID); err != nil {
			return err
		}
		return tx.Comments.Update(ctx, scope.Comments(actor), c)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// Delete elimina el comentario si está dentro del alcance del actor.
func (uc *CommentUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	return uc.uow.Run(ctx, func(tx repository.RepoSet) error {
		return tx.Comments.Delete(ctx, scope.Comments(actor), id)
	})
}

func toCommentResponse(c *entity.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		Date:      c.Date,
		VehicleID: c.VehicleID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
