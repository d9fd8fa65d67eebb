package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
)

// MedicalHandler maneja las peticiones HTTP para tratamientos veterinarios.
type MedicalHandler struct {
	uc *usecase.MedicalUseCase
}

// NewMedicalHandler construye el handler.
func NewMedicalHandler(uc *usecase.MedicalUseCase) *MedicalHandler {
	return &MedicalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar tratamiento veterinario
// @Tags         medical-treatments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicalTreatmentRequest  true  "Datos del tratamiento"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medical-treatments [post]
func (h *MedicalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicalTreatmentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("tratamiento registrado", out))
}

// List godoc
// @Summary      Listar tratamientos
// @Tags         medical-treatments
// @Security     Bearer
// @Produce      json
// @Param        livestockId  query  string  false  "Filtro por arete del animal"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200          {object}  dto.Envelope
// @Router       /api/medical-treatments [get]
func (h *MedicalHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("livestockId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tratamientos", out))
}

// Delete godoc
// @Summary      Eliminar tratamiento
// @Tags         medical-treatments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tratamiento"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medical-treatments/{id} [delete]
func (h *MedicalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("tratamiento eliminado", nil))
}
