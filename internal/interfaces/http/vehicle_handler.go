package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

// VehicleHandler maneja las peticiones HTTP para el recurso Vehicle.
type VehicleHandler struct {
	uc *usecase.VehicleUsecase
}

// NewVehicleHandler construye el handler inyectando el caso de uso.
func NewVehicleHandler(uc *usecase.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear vehículo
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVehicleRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
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
// @Summary      Listar vehículos visibles
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Param        search      query  string  false  "Marca, modelo o matrícula"
// @Param        status      query  string  false  "Disponibilidad exacta"
// @Param        limit       query  int     false  "Límite"  default(15)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.VehicleListResponse
// @Router       /api/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	params := repository.VehicleListParams{
		CompanyID: c.Query("company_id"),
		Search:    c.Query("search"),
		Status:    c.Query("status"),
	}
	out, err := h.uc.List(c.Context(), CurrentUser(c), params, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vehículo por ID
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.VehicleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FuelReport godoc
// @Summary      Reporte PDF de consumo de combustible
// @Tags         vehicles
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del vehículo"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id}/reports/fuel [get]
func (h *VehicleHandler) FuelReport(c *fiber.Ctx) error {
	pdf, name, err := h.uc.FuelReport(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Send(pdf)
}

// Update godoc
// @Summary      Reemplazar vehículo
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID del vehículo"
// @Param        body  body  dto.CreateVehicleRequest  true  "Datos del vehículo"
// @Success      200   {object}  dto.VehicleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
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
// @Summary      Eliminar vehículo
// @Tags         vehicles
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del vehículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
