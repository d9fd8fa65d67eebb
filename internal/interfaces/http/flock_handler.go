package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// FlockHandler maneja las peticiones HTTP para lotes.
type FlockHandler struct {
	uc *usecase.FlockUseCase
}

// NewFlockHandler construye el handler.
func NewFlockHandler(uc *usecase.FlockUseCase) *FlockHandler {
	return &FlockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote
// @Tags         flocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFlockRequest  true  "Datos del lote"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/flocks [post]
func (h *FlockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFlockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("lote creado", out))
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         flocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/flocks/{id} [get]
func (h *FlockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "lote no encontrado")
	}
	return c.JSON(dto.OK("lote", out))
}

// List godoc
// @Summary      Listar lotes
// @Tags         flocks
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope
// @Router       /api/flocks [get]
func (h *FlockHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("lotes", out))
}

// Update godoc
// @Summary      Actualizar lote (parcial)
// @Tags         flocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateFlockRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/flocks/{id} [put]
func (h *FlockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFlockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "lote no encontrado")
	}
	return c.JSON(dto.OK("lote actualizado", out))
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         flocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/flocks/{id} [delete]
func (h *FlockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("lote eliminado", nil))
}
