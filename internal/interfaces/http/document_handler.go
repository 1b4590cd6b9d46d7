package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetflow/fleetflow-api/internal/application/dto"
	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

// DocumentHandler maneja las peticiones HTTP para el recurso Document,
// incluido el archivo adjunto.
type DocumentHandler struct {
	uc *usecase.DocumentUsecase
}

// NewDocumentHandler construye el handler inyectando el caso de uso.
func NewDocumentHandler(uc *usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear documento
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDocumentRequest  true  "Datos del documento"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
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
// @Summary      Listar documentos
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        search     query  string  false  "Título o descripción"
// @Param        file_type  query  string  false  "Tipo de archivo exacto"
// @Param        limit      query  int     false  "Límite"  default(15)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.DocumentListResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	params := repository.DocumentListParams{
		Search:   c.Query("search"),
		FileType: c.Query("file_type"),
	}
	out, err := h.uc.List(c.Context(), CurrentUser(c), params, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener documento por ID
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadFile godoc
// @Summary      Subir o reemplazar el archivo del documento
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "ID del documento"
// @Param        file  formData  file    true  "Archivo"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/file [post]
func (h *DocumentHandler) UploadFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "falta el campo multipart 'file'",
		})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	contentType := fh.Header.Get(fiber.HeaderContentType)
	out, err := h.uc.UploadFile(c.Context(), CurrentUser(c), c.Params("id"), fh.Filename, contentType, fh.Size, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadFile godoc
// @Summary      Descargar el archivo del documento
// @Tags         documents
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/file [get]
func (h *DocumentHandler) DownloadFile(c *fiber.Ctx) error {
	rc, size, contentType, title, err := h.uc.DownloadFile(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentLength, strconv.FormatInt(size, 10))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+title+`"`)
	return c.SendStream(rc, int(size))
}

// Update godoc
// @Summary      Reemplazar documento
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del documento"
// @Param        body  body  dto.CreateDocumentRequest  true  "Datos del documento"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
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
// @Summary      Eliminar documento
// @Tags         documents
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
