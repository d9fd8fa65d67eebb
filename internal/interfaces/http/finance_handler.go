package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
)

// profitLossReader contrato mínimo del handler de finanzas; lo implementa
// *finance.ProfitLossUseCase. La interfaz permite testear el handler con fakes.
type profitLossReader interface {
	GetProfitLoss(ctx context.Context, startDate, endDate *time.Time) (*dto.ProfitLossReportDTO, error)
	GetROIAnalysis(ctx context.Context, period string) (*dto.ROIAnalysisDTO, error)
}

// pdfDownloader contrato del export PDF; lo implementa *finance.PDFUseCase.
type pdfDownloader interface {
	DownloadProfitLossPDF(ctx context.Context, startDate, endDate *time.Time) ([]byte, string, error)
}

// FinanceHandler maneja el P&L agrícola, el análisis de ROI y el export PDF.
type FinanceHandler struct {
	profitLoss profitLossReader
	pdf        pdfDownloader
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(profitLoss profitLossReader, pdf pdfDownloader) *FinanceHandler {
	return &FinanceHandler{profitLoss: profitLoss, pdf: pdf}
}

// GetProfitLoss godoc
// @Summary      Reporte de pérdidas y ganancias agrícola
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200        {object}  dto.Envelope
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/finance/profit-loss [get]
func (h *FinanceHandler) GetProfitLoss(c *fiber.Ctx) error {
	startDate, ok := parseDateQuery(c, "startDate")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate inválida, formato YYYY-MM-DD"})
	}
	endDate, ok := parseDateQuery(c, "endDate")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate inválida, formato YYYY-MM-DD"})
	}
	out, err := h.profitLoss.GetProfitLoss(c.Context(), startDate, endDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("reporte de pérdidas y ganancias", out))
}

// GetROIAnalysis godoc
// @Summary      Análisis de ROI por período
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "weekly|monthly|quarterly"  default(monthly)
// @Success      200     {object}  dto.Envelope
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/finance/roi-analysis [get]
func (h *FinanceHandler) GetROIAnalysis(c *fiber.Ctx) error {
	out, err := h.profitLoss.GetROIAnalysis(c.Context(), c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("análisis de ROI", out))
}

// DownloadProfitLossPDF godoc
// @Summary      Descargar el P&L como PDF
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200        {file}    binary
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/finance/profit-loss/pdf [get]
func (h *FinanceHandler) DownloadProfitLossPDF(c *fiber.Ctx) error {
	startDate, ok := parseDateQuery(c, "startDate")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate inválida, formato YYYY-MM-DD"})
	}
	endDate, ok := parseDateQuery(c, "endDate")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate inválida, formato YYYY-MM-DD"})
	}
	pdfBytes, filename, err := h.pdf.DownloadProfitLossPDF(c.Context(), startDate, endDate)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
