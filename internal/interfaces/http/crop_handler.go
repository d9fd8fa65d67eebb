package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// CropHandler maneja las peticiones HTTP para cultivos y sus gastos anidados.
type CropHandler struct {
	uc        *usecase.CropUseCase
	expenseUC *usecase.ExpenseUseCase
}

// NewCropHandler construye el handler.
func NewCropHandler(uc *usecase.CropUseCase, expenseUC *usecase.ExpenseUseCase) *CropHandler {
	return &CropHandler{uc: uc, expenseUC: expenseUC}
}

// Create godoc
// @Summary      Crear cultivo
// @Tags         crops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCropRequest  true  "Datos del cultivo"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crops [post]
func (h *CropHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCropRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("cultivo creado", out))
}

// GetByID godoc
// @Summary      Obtener cultivo por ID
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cultivo"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crops/{id} [get]
func (h *CropHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "cultivo no encontrado")
	}
	return c.JSON(dto.OK("cultivo", out))
}

// List godoc
// @Summary      Listar cultivos
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro por estado"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope
// @Router       /api/crops [get]
func (h *CropHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("cultivos", out))
}

// Update godoc
// @Summary      Actualizar cultivo (parcial)
// @Tags         crops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cultivo"
// @Param        body  body  dto.UpdateCropRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crops/{id} [put]
func (h *CropHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCropRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "cultivo no encontrado")
	}
	return c.JSON(dto.OK("cultivo actualizado", out))
}

// Delete godoc
// @Summary      Eliminar cultivo y sus gastos
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cultivo"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crops/{id} [delete]
func (h *CropHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("cultivo eliminado", nil))
}

// ListExpenses godoc
// @Summary      Listar gastos de un cultivo
// @Tags         crops
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del cultivo"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope
// @Router       /api/crops/{id}/expenses [get]
func (h *CropHandler) ListExpenses(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.expenseUC.ListByCrop(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("gastos del cultivo", out))
}

// CreateExpense godoc
// @Summary      Registrar gasto de un cultivo
// @Tags         crops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cultivo"
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crops/{id}/expenses [post]
func (h *CropHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	in.CropID = c.Params("id")
	out, err := h.expenseUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("gasto registrado", out))
}
