package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

// CommentHandler maneja las peticiones HTTP para el recurso Comment.
type CommentHandler struct {
	uc *usecase.CommentUsecase
}

// NewCommentHandler construye el handler inyectando el caso de uso.
func NewCommentHandler(uc *usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear comentario
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCommentRequest  true  "Datos del comentario"
// @Success      201   {object}  dto.CommentResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar comentarios visibles
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        vehicle_id  query  string  false  "Filtrar por vehículo"
// @Param        user_id     query  string  false  "Filtrar por usuario"
// @Param        limit       query  int     false  "Límite"  default(15)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.CommentListResponse
// @Router       /api/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	params := repository.CommentListParams{
		VehicleID: c.Query("vehicle_id"),
		UserID:    c.Query("user_id"),
	}
	out, err := h.uc.List(c.Context(), CurrentUser(c), params, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener comentario por ID
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del comentario"
// @Success      200  {object}  dto.CommentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [get]
func (h *CommentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar comentario
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID del comentario"
// @Param        body  body  dto.CreateCommentRequest  true  "Datos del comentario"
// @Success      200   {object}  dto.CommentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar comentario
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del comentario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
