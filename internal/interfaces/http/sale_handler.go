package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP para ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Una venta de tipo animal marca al animal como vendido en la misma transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.RecordSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("venta registrada", out))
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "venta no encontrada")
	}
	return c.JSON(dto.OK("venta", out))
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        flockId   query  string  false  "Filtro por lote"
// @Param        saleType  query  string  false  "Filtro por tipo (animal|product)"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {object}  dto.Envelope
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("flockId"), c.Query("saleType"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ventas", out))
}

// Delete godoc
// @Summary      Eliminar venta
// @Description  Si la venta era de un animal, el animal vuelve a estado activo en la misma transacción.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSale(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("venta eliminada", nil))
}
