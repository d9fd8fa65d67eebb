package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// ExpenseHandler maneja la edición y eliminación de gastos de cultivo.
// El alta y el listado viven anidados bajo /crops/:id/expenses (CropHandler).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Update godoc
// @Summary      Actualizar gasto de cultivo
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "gasto no encontrado")
	}
	return c.JSON(dto.OK("gasto actualizado", out))
}

// Delete godoc
// @Summary      Eliminar gasto de cultivo
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gasto eliminado", nil))
}
