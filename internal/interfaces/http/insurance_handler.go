package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

// InsuranceHandler maneja las peticiones HTTP para el recurso Insurance.
type InsuranceHandler struct {
	uc *usecase.InsuranceUsecase
}

// NewInsuranceHandler construye el handler inyectando el caso de uso.
func NewInsuranceHandler(uc *usecase.InsuranceUsecase) *InsuranceHandler {
	return &InsuranceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar póliza
// @Tags         insurances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInsuranceRequest  true  "Datos de la póliza"
// @Success      201   {object}  dto.InsuranceResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/insurances [post]
func (h *InsuranceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInsuranceRequest
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
// @Summary      Listar pólizas visibles
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Param        vehicle_id   query  string  false  "Filtrar por vehículo"
// @Param        document_id  query  string  false  "Filtrar por documento"
// @Param        company_id   query  string  false  "Filtrar por empresa"
// @Param        limit        query  int     false  "Límite"  default(15)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.InsuranceListResponse
// @Router       /api/insurances [get]
func (h *InsuranceHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	params := repository.InsuranceListParams{
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

// Finishing godoc
// @Summary      Pólizas que vencen en los próximos 31 días
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.InsuranceResponse
// @Router       /api/insurances/finishing [get]
func (h *InsuranceHandler) Finishing(c *fiber.Ctx) error {
	out, err := h.uc.Finishing(c.Context(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener póliza por ID
// @Tags         insurances
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la póliza"
// @Success      200  {object}  dto.InsuranceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insurances/{id} [get]
func (h *InsuranceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar póliza
// @Tags         insurances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID de la póliza"
// @Param        body  body  dto.CreateInsuranceRequest  true  "Datos de la póliza"
// @Success      200   {object}  dto.InsuranceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/insurances/{id} [put]
func (h *InsuranceHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateInsuranceRequest
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
// @Summary      Eliminar póliza
// @Tags         insurances
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la póliza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insurances/{id} [delete]
func (h *InsuranceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
