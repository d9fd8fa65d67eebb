package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
)

// summaryReader contrato mínimo del handler de resúmenes; lo implementa
// *finance.SummaryUseCase.
type summaryReader interface {
	GetFlockSummaries(ctx context.Context, flockID *string) ([]dto.FlockSummaryDTO, error)
	GetAnimalSummaries(ctx context.Context, animalID *string) ([]dto.AnimalSummaryDTO, error)
	GetFlockMetrics(ctx context.Context, flockID string) (*dto.FlockMetricsDTO, error)
}

// SummaryHandler maneja los resúmenes financieros por lote y por animal.
type SummaryHandler struct {
	uc summaryReader
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc summaryReader) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// GetFlockSummaries godoc
// @Summary      Resumen financiero por lote
// @Tags         financial-summary
// @Security     Bearer
// @Produce      json
// @Param        flockId  query  string  false  "ID del lote (sin él, todos)"
// @Success      200      {object}  dto.Envelope
// @Router       /api/financial-summary/flocks [get]
func (h *SummaryHandler) GetFlockSummaries(c *fiber.Ctx) error {
	var flockID *string
	if v := c.Query("flockId"); v != "" {
		flockID = &v
	}
	out, err := h.uc.GetFlockSummaries(c.Context(), flockID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("resumen por lote", out))
}

// GetAnimalSummaries godoc
// @Summary      Resumen financiero por animal
// @Tags         financial-summary
// @Security     Bearer
// @Produce      json
// @Param        animalId  query  string  false  "Arete del animal (sin él, todos)"
// @Success      200       {object}  dto.Envelope
// @Router       /api/financial-summary/animals [get]
func (h *SummaryHandler) GetAnimalSummaries(c *fiber.Ctx) error {
	var animalID *string
	if v := c.Query("animalId"); v != "" {
		animalID = &v
	}
	out, err := h.uc.GetAnimalSummaries(c.Context(), animalID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("resumen por animal", out))
}

// GetFlockMetrics godoc
// @Summary      Métricas de un lote
// @Tags         financial-summary
// @Security     Bearer
// @Produce      json
// @Param        flockId  path  string  true  "ID del lote"
// @Success      200      {object}  dto.Envelope
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/financial-summary/flocks/{flockId}/metrics [get]
func (h *SummaryHandler) GetFlockMetrics(c *fiber.Ctx) error {
	flockID := c.Params("flockId")
	// Un flockId que no es uuid no puede nombrar ningún lote: 404 directo,
	// sin llegar a la consulta.
	if _, err := uuid.Parse(flockID); err != nil {
		return respondNotFound(c, "lote no encontrado")
	}
	out, err := h.uc.GetFlockMetrics(c.Context(), flockID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "lote no encontrado")
	}
	return c.JSON(dto.OK("métricas del lote", out))
}
