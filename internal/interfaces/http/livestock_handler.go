package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// LivestockHandler maneja las peticiones HTTP para animales.
// La clave en rutas es el arete (tag_id), no el UUID interno.
type LivestockHandler struct {
	uc *usecase.LivestockUseCase
}

// NewLivestockHandler construye el handler.
func NewLivestockHandler(uc *usecase.LivestockUseCase) *LivestockHandler {
	return &LivestockHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar animal
// @Tags         livestock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLivestockRequest  true  "Datos del animal"
// @Success      201   {object}  dto.Envelope
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/livestock [post]
func (h *LivestockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLivestockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("animal registrado", out))
}

// GetByTagID godoc
// @Summary      Obtener animal por arete
// @Tags         livestock
// @Security     Bearer
// @Produce      json
// @Param        tagId  path  string  true  "Arete del animal"
// @Success      200    {object}  dto.Envelope
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/livestock/{tagId} [get]
func (h *LivestockHandler) GetByTagID(c *fiber.Ctx) error {
	out, err := h.uc.GetByTagID(c.Params("tagId"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "animal no encontrado")
	}
	return c.JSON(dto.OK("animal", out))
}

// List godoc
// @Summary      Listar animales
// @Tags         livestock
// @Security     Bearer
// @Produce      json
// @Param        flockId  query  string  false  "Filtro por lote"
// @Param        status   query  string  false  "Filtro por estado"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.Envelope
// @Router       /api/livestock [get]
func (h *LivestockHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("flockId"), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("animales", out))
}

// Update godoc
// @Summary      Actualizar animal (parcial)
// @Tags         livestock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        tagId  path  string  true  "Arete del animal"
// @Param        body   body  dto.UpdateLivestockRequest  true  "Campos a actualizar"
// @Success      200    {object}  dto.Envelope
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/livestock/{tagId} [put]
func (h *LivestockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLivestockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Update(c.Params("tagId"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "animal no encontrado")
	}
	return c.JSON(dto.OK("animal actualizado", out))
}

// Delete godoc
// @Summary      Eliminar animal
// @Tags         livestock
// @Security     Bearer
// @Produce      json
// @Param        tagId  path  string  true  "Arete del animal"
// @Success      200    {object}  dto.Envelope
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/livestock/{tagId} [delete]
func (h *LivestockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("tagId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("animal eliminado", nil))
}
