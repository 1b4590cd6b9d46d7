package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

// ReservationHandler maneja las peticiones HTTP para el recurso Reservation.
type ReservationHandler struct {
	uc *usecase.ReservationUsecase
}

// NewReservationHandler construye el handler inyectando el caso de uso.
func NewReservationHandler(uc *usecase.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reserva
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReservationRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
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
// @Summary      Listar reservas visibles
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        vehicle_id  query  string  false  "Filtrar por vehículo"
// @Param        user_id     query  string  false  "Filtrar por usuario"
// @Param        limit       query  int     false  "Límite"  default(15)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ReservationListResponse
// @Router       /api/reservations [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	params := repository.ReservationListParams{
		VehicleID: c.Query("vehicle_id"),
		UserID:    c.Query("user_id"),
	}
	out, err := h.uc.List(c.Context(), CurrentUser(c), params, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Upcoming godoc
// @Summary      Reservas futuras ordenadas por fecha de inicio
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ReservationResponse
// @Router       /api/reservations/upcoming [get]
func (h *ReservationHandler) Upcoming(c *fiber.Ctx) error {
	out, err := h.uc.Upcoming(c.Context(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva por ID
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar reserva
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                        true  "ID de la reserva"
// @Param        body  body  dto.CreateReservationRequest  true  "Datos de la reserva"
// @Success      200   {object}  dto.ReservationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
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
// @Summary      Eliminar reserva
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la reserva"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
