package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProfitLossSummaryResult totales agrícolas del período.
// Revenue solo cuenta cultivos SOLD con rendimiento real y precio positivo.
type ProfitLossSummaryResult struct {
	TotalRevenue  decimal.Decimal // SUM(actual_yield * market_price)
	TotalExpenses decimal.Decimal // SUM(expenses.amount) en el rango
}

// CropROIResult ROI de un cultivo individual para el ranking.
// Los cultivos con total_expenses = 0 no aparecen (división por cero).
type CropROIResult struct {
	CropID        string
	CropName      string
	Status        string
	Revenue       decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	ROIPercentage decimal.Decimal
}

// PeriodROIResult métricas agregadas de un bucket temporal (semana ISO, mes o trimestre).
type PeriodROIResult struct {
	Period           string // "2026-W07" | "2026-02" | "2026-Q1"
	CropCount        int
	TotalRevenue     decimal.Decimal
	TotalExpenses    decimal.Decimal
	AvgROIPercentage decimal.Decimal // 0 si el bucket no tiene gastos
	AvgNetProfit     decimal.Decimal
}

// FinanceRepository consultas de solo lectura para el reporte agrícola de
// pérdidas y ganancias y el análisis de ROI por período.
// startDate/endDate son opcionales e independientes (nil = sin filtro).
type FinanceRepository interface {
	// GetProfitLossSummary devuelve ingresos y gastos totales del rango.
	// Usa COALESCE para devolver cero si no hay filas.
	GetProfitLossSummary(ctx context.Context, startDate, endDate *time.Time) (ProfitLossSummaryResult, error)

	// GetROIByCrop devuelve el ranking de cultivos por ROI descendente,
	// excluyendo cultivos sin gastos registrados.
	GetROIByCrop(ctx context.Context, startDate, endDate *time.Time) ([]CropROIResult, error)

	// GetROIByPeriod agrupa cultivos HARVESTED/SOLD por bucket temporal.
	// period debe venir validado: weekly | monthly | quarterly.
	// Orden: etiqueta de período descendente (lexicográfico = cronológico).
	GetROIByPeriod(ctx context.Context, period string) ([]PeriodROIResult, error)
}
