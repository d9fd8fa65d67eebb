package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// LivestockExpenseHandler maneja las peticiones HTTP para gastos pecuarios.
type LivestockExpenseHandler struct {
	uc *usecase.LivestockExpenseUseCase
}

// NewLivestockExpenseHandler construye el handler.
func NewLivestockExpenseHandler(uc *usecase.LivestockExpenseUseCase) *LivestockExpenseHandler {
	return &LivestockExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto pecuario
// @Tags         livestock-expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLivestockExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/livestock-expenses [post]
func (h *LivestockExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLivestockExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("gasto pecuario registrado", out))
}

// List godoc
// @Summary      Listar gastos pecuarios
// @Tags         livestock-expenses
// @Security     Bearer
// @Produce      json
// @Param        flockId  query  string  false  "Filtro por lote"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.Envelope
// @Router       /api/livestock-expenses [get]
func (h *LivestockExpenseHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("flockId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gastos pecuarios", out))
}

// Delete godoc
// @Summary      Eliminar gasto pecuario
// @Tags         livestock-expenses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/livestock-expenses/{id} [delete]
func (h *LivestockExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gasto pecuario eliminado", nil))
}
