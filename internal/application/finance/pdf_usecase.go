package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Granja-api/internal/application/dto"
)

// ReportPDFGenerator renderiza el estado de pérdidas y ganancias como PDF.
type ReportPDFGenerator interface {
	GenerateProfitLossPDF(ctx context.Context, report *dto.ProfitLossReportDTO) ([]byte, error)
}

// PDFUseCase genera la versión descargable del P&L agrícola.
type PDFUseCase struct {
	profitLoss *ProfitLossUseCase
	generator  ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(profitLoss *ProfitLossUseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{profitLoss: profitLoss, generator: generator}
}

// DownloadProfitLossPDF arma el reporte del rango y lo renderiza.
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *PDFUseCase) DownloadProfitLossPDF(
	ctx context.Context,
	startDate, endDate *time.Time,
) (pdfBytes []byte, filename string, err error) {
	report, err := uc.profitLoss.GetProfitLoss(ctx, startDate, endDate)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateProfitLossPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("perdidas_ganancias_%s.pdf", time.Now().Format("20060102"))
	return pdfBytes, filename, nil
}
