package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
)

// livestockReportReader contrato mínimo del handler de reportes; lo implementa
// *finance.LivestockReportUseCase.
type livestockReportReader interface {
	GetReport(ctx context.Context, startDate, endDate *time.Time) (*dto.LivestockReportDTO, error)
}

// ReportsHandler maneja el reporte pecuario integral.
type ReportsHandler struct {
	uc livestockReportReader
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc livestockReportReader) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// GetLivestockReport godoc
// @Summary      Reporte pecuario integral
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD (solo producción)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (solo producción)"
// @Success      200        {object}  dto.Envelope
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/reports/livestock [get]
func (h *ReportsHandler) GetLivestockReport(c *fiber.Ctx) error {
	startDate, ok := parseDateQuery(c, "startDate")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate inválida, formato YYYY-MM-DD"})
	}
	endDate, ok := parseDateQuery(c, "endDate")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate inválida, formato YYYY-MM-DD"})
	}
	out, err := h.uc.GetReport(c.Context(), startDate, endDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("reporte pecuario", out))
}
