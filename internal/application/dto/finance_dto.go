package dto

import "github.com/shopspring/decimal"

// ProfitLossSummaryDTO totales del reporte agrícola de pérdidas y ganancias.
type ProfitLossSummaryDTO struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ROIPercentage decimal.Decimal `json:"roi_percentage"`
}

// CropROIDTO posición de un cultivo en el ranking de ROI.
type CropROIDTO struct {
	CropID        string          `json:"crop_id"`
	CropName      string          `json:"crop_name"`
	Status        string          `json:"status"`
	Revenue       decimal.Decimal `json:"revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ROIPercentage decimal.Decimal `json:"roi_percentage"`
}

// TimeframeDTO eco del rango de fechas solicitado (null = sin filtro).
// Las claves replican los query params startDate/endDate.
type TimeframeDTO struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// ProfitLossReportDTO respuesta de GET /api/finance/profit-loss.
// La clave roiByCrop es contrato con los clientes del reporte.
type ProfitLossReportDTO struct {
	Summary   ProfitLossSummaryDTO `json:"summary"`
	ROIByCrop []CropROIDTO         `json:"roiByCrop"`
	Timeframe TimeframeDTO         `json:"timeframe"`
}

// PeriodROIDTO métricas de un bucket temporal del análisis de ROI.
type PeriodROIDTO struct {
	Period           string          `json:"period"`
	CropCount        int             `json:"crop_count"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	AvgROIPercentage decimal.Decimal `json:"avg_roi_percentage"`
	AvgNetProfit     decimal.Decimal `json:"avg_net_profit"`
}

// ROIAnalysisDTO respuesta de GET /api/finance/roi-analysis.
type ROIAnalysisDTO struct {
	Period  string         `json:"period"`
	Buckets []PeriodROIDTO `json:"buckets"`
}
