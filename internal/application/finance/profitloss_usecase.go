// Package finance contiene los casos de uso de reportes financieros: el P&L
// agrícola, el análisis de ROI por período, los resúmenes por lote/animal y
// el reporte pecuario integral.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// ProfitLossUseCase genera el reporte agrícola de pérdidas y ganancias y el
// análisis de ROI por período.
//
// Fuente de datos: FinanceRepository (consultas read-only). Los repos
// devuelven agregados crudos; el neto y el ROI del resumen se derivan aquí.
type ProfitLossUseCase struct {
	financeRepo repository.FinanceRepository
}

// NewProfitLossUseCase construye el caso de uso.
func NewProfitLossUseCase(financeRepo repository.FinanceRepository) *ProfitLossUseCase {
	return &ProfitLossUseCase{financeRepo: financeRepo}
}

// GetProfitLoss construye el ProfitLossReportDTO del rango indicado.
// startDate/endDate son opcionales e independientes (nil = sin filtro).
//
// Dos llamadas en paralelo:
//  1. GetProfitLossSummary(rango) → totales
//  2. GetROIByCrop(rango)         → ranking por cultivo
func (uc *ProfitLossUseCase) GetProfitLoss(
	ctx context.Context,
	startDate, endDate *time.Time,
) (*dto.ProfitLossReportDTO, error) {
	type summaryResult struct {
		res repository.ProfitLossSummaryResult
		err error
	}
	type roiResult struct {
		rows []repository.CropROIResult
		err  error
	}

	summaryCh := make(chan summaryResult, 1)
	roiCh := make(chan roiResult, 1)

	go func() {
		res, err := uc.financeRepo.GetProfitLossSummary(ctx, startDate, endDate)
		summaryCh <- summaryResult{res, err}
	}()
	go func() {
		rows, err := uc.financeRepo.GetROIByCrop(ctx, startDate, endDate)
		roiCh <- roiResult{rows, err}
	}()

	summary := <-summaryCh
	roi := <-roiCh

	if summary.err != nil {
		return nil, fmt.Errorf("profit-loss: resumen: %w", summary.err)
	}
	if roi.err != nil {
		return nil, fmt.Errorf("profit-loss: roi por cultivo: %w", roi.err)
	}

	net := summary.res.TotalRevenue.Sub(summary.res.TotalExpenses)
	roiPct := decimal.Zero
	if summary.res.TotalExpenses.IsPositive() {
		roiPct = net.Div(summary.res.TotalExpenses).Mul(hundred).Round(2)
	}

	byCrop := make([]dto.CropROIDTO, 0, len(roi.rows))
	for _, row := range roi.rows {
		byCrop = append(byCrop, dto.CropROIDTO{
			CropID:        row.CropID,
			CropName:      row.CropName,
			Status:        row.Status,
			Revenue:       row.Revenue,
			TotalExpenses: row.TotalExpenses,
			NetProfit:     row.NetProfit,
			ROIPercentage: row.ROIPercentage,
		})
	}

	return &dto.ProfitLossReportDTO{
		Summary: dto.ProfitLossSummaryDTO{
			TotalRevenue:  summary.res.TotalRevenue.Round(2),
			TotalExpenses: summary.res.TotalExpenses.Round(2),
			NetProfit:     net.Round(2),
			ROIPercentage: roiPct,
		},
		ROIByCrop: byCrop,
		Timeframe: toTimeframe(startDate, endDate),
	}, nil
}

// GetROIAnalysis construye el análisis de ROI por período.
// period vacío → monthly; un valor fuera del enum → ErrInvalidInput.
func (uc *ProfitLossUseCase) GetROIAnalysis(
	ctx context.Context,
	period string,
) (*dto.ROIAnalysisDTO, error) {
	if period == "" {
		period = "monthly"
	}
	switch period {
	case "weekly", "monthly", "quarterly":
	default:
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.financeRepo.GetROIByPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("roi-analysis: %w", err)
	}

	buckets := make([]dto.PeriodROIDTO, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, dto.PeriodROIDTO{
			Period:           row.Period,
			CropCount:        row.CropCount,
			TotalRevenue:     row.TotalRevenue,
			TotalExpenses:    row.TotalExpenses,
			AvgROIPercentage: row.AvgROIPercentage,
			AvgNetProfit:     row.AvgNetProfit,
		})
	}

	return &dto.ROIAnalysisDTO{Period: period, Buckets: buckets}, nil
}

// toTimeframe formatea el eco del rango solicitado (null = sin filtro).
func toTimeframe(startDate, endDate *time.Time) dto.TimeframeDTO {
	var tf dto.TimeframeDTO
	if startDate != nil {
		s := startDate.Format("2006-01-02")
		tf.StartDate = &s
	}
	if endDate != nil {
		e := endDate.Format("2006-01-02")
		tf.EndDate = &e
	}
	return tf
}
