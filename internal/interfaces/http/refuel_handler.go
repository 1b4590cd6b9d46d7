package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

// RefuelHandler maneja las peticiones HTTP para el recurso Refuel.
type RefuelHandler struct {
	uc *usecase.RefuelUsecase
}

// NewRefuelHandler construye el handler inyectando el caso de uso.
func NewRefuelHandler(uc *usecase.RefuelUsecase) *RefuelHandler {
	return &RefuelHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar repostaje
// @Tags         refuels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRefuelRequest  true  "Datos del repostaje"
// @Success      201   {object}  dto.RefuelResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/refuels [post]
func (h *RefuelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRefuelRequest
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
// @Summary      Listar repostajes visibles
// @Tags         refuels
// @Produce      json
// @Security     BearerAuth
// @Param        vehicle_id   query  string  false  "Filtrar por vehículo"
// @Param        document_id  query  string  false  "Filtrar por documento"
// @Param        user_id      query  string  false  "Filtrar por usuario"
// @Param        limit        query  int     false  "Límite"  default(15)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.RefuelListResponse
// @Router       /api/refuels [get]
func (h *RefuelHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	params := repository.RefuelListParams{
		VehicleID:  c.Query("vehicle_id"),
		DocumentID: c.Query("document_id"),
		UserID:     c.Query("user_id"),
	}
	out, err := h.uc.List(c.Context(), CurrentUser(c), params, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// YearlyStats godoc
// @Summary      Combustible total por mes de los últimos doce meses
// @Tags         refuels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.RefuelStat
// @Router       /api/refuels/stats [get]
func (h *RefuelHandler) YearlyStats(c *fiber.Ctx) error {
	out, err := h.uc.YearlyStats(c.Context(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener repostaje por ID
// @Tags         refuels
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del repostaje"
// @Success      200  {object}  dto.RefuelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/refuels/{id} [get]
func (h *RefuelHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar repostaje
// @Tags         refuels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del repostaje"
// @Param        body  body  dto.CreateRefuelRequest  true  "Datos del repostaje"
// @Success      200   {object}  dto.RefuelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/refuels/{id} [put]
func (h *RefuelHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateRefuelRequest
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
// @Summary      Eliminar repostaje
// @Tags         refuels
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del repostaje"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/refuels/{id} [delete]
func (h *RefuelHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
