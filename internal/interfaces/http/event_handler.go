package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

// EventHandler maneja las peticiones HTTP para el recurso Event.
type EventHandler struct {
	uc *usecase.EventUsecase
}

// NewEventHandler construye el handler inyectando el caso de uso.
func NewEventHandler(uc *usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
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
// @Summary      Listar eventos
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        vehicle_id   query  string  false  "Filtrar por vehículo"
// @Param        document_id  query  string  false  "Filtrar por documento"
// @Param        company_id   query  string  false  "Filtrar por empresa"
// @Param        limit        query  int     false  "Límite"  default(15)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.EventListResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	params := repository.EventListParams{
		VehicleID:  c.Query("vehicle_id"),
		DocumentID: c.Query("document_id"),
		CompanyID:  c.Query("company_id"),
	}
	out, err := h.uc.List(c.Context(), CurrentUser(c), params, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener evento por ID
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID del evento"
// @Param        body  body  dto.CreateEventRequest  true  "Datos del evento"
// @Success      200   {object}  dto.EventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
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
// @Summary      Eliminar evento
// @Tags         events
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
