package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// ProductionHandler maneja las peticiones HTTP para registros de producción.
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar producción
// @Tags         production-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRecordRequest  true  "Datos del registro"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production-records [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("producción registrada", out))
}

// List godoc
// @Summary      Listar registros de producción
// @Tags         production-records
// @Security     Bearer
// @Produce      json
// @Param        flockId      query  string  false  "Filtro por lote"
// @Param        productType  query  string  false  "Filtro por tipo de producto"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200          {object}  dto.Envelope
// @Router       /api/production-records [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("flockId"), c.Query("productType"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("registros de producción", out))
}

// Delete godoc
// @Summary      Eliminar registro de producción
// @Tags         production-records
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-records/{id} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("registro eliminado", nil))
}
