package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo consultas de solo lectura para el P&L agrícola y el ROI por período.
type FinanceRepo struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository construye el adaptador de finanzas agrícolas.
func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepo {
	return &FinanceRepo{pool: pool}
}

// Formatos to_char por período. El orden lexicográfico de las etiquetas
// coincide con el cronológico, así ORDER BY period DESC basta.
var periodFormats = map[string]string{
	"weekly":    `IYYY-"W"IW`,
	"monthly":   `YYYY-MM`,
	"quarterly": `YYYY-"Q"Q`,
}

// GetProfitLossSummary devuelve ingresos y gastos totales del rango.
// Ingresos: SUM(actual_yield * market_price) de cultivos SOLD con rendimiento
// real y precio positivo. Gastos: SUM(expenses.amount) en el rango de fechas.
// Los filtros son independientes: cualquiera puede ser NULL.
func (r *FinanceRepo) GetProfitLossSummary(
	ctx context.Context,
	startDate, endDate *time.Time,
) (repository.ProfitLossSummaryResult, error) {
	const query = `
	SELECT
	    COALESCE((
	        SELECT SUM(c.actual_yield * c.market_price)
	        FROM crops c
	        WHERE c.status = 'SOLD'
	          AND c.actual_yield IS NOT NULL
	          AND c.market_price > 0
	          AND ($1::date IS NULL OR COALESCE(c.harvest_date, c.planting_date) >= $1)
	          AND ($2::date IS NULL OR COALESCE(c.harvest_date, c.planting_date) <= $2)
	    ), 0) AS total_revenue,
	    COALESCE((
	        SELECT SUM(e.amount)
	        FROM expenses e
	        WHERE ($1::date IS NULL OR e.date >= $1)
	          AND ($2::date IS NULL OR e.date <= $2)
	    ), 0) AS total_expenses`

	var res repository.ProfitLossSummaryResult
	err := r.pool.QueryRow(ctx, query, startDate, endDate).
		Scan(&res.TotalRevenue, &res.TotalExpenses)
	if err != nil {
		return repository.ProfitLossSummaryResult{}, fmt.Errorf("finance.GetProfitLossSummary: %w", err)
	}
	return res, nil
}

// GetROIByCrop devuelve el ranking de cultivos por ROI descendente.
// Fórmula: ((actual_yield*market_price - total_expenses) / total_expenses) * 100.
// Los cultivos con total_expenses = 0 se excluyen del ranking (división por cero).
func (r *FinanceRepo) GetROIByCrop(
	ctx context.Context,
	startDate, endDate *time.Time,
) ([]repository.CropROIResult, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    c.status,
	    COALESCE(c.actual_yield * c.market_price, 0)                       AS revenue,
	    c.total_expenses,
	    COALESCE(c.actual_yield * c.market_price, 0) - c.total_expenses    AS net_profit,
	    ROUND(
	        (COALESCE(c.actual_yield * c.market_price, 0) - c.total_expenses)
	        / c.total_expenses * 100, 2)                                   AS roi_percentage
	FROM crops c
	WHERE c.total_expenses > 0
	  AND c.status IN ('HARVESTED', 'SOLD')
	  AND ($1::date IS NULL OR COALESCE(c.harvest_date, c.planting_date) >= $1)
	  AND ($2::date IS NULL OR COALESCE(c.harvest_date, c.planting_date) <= $2)
	ORDER BY roi_percentage DESC`

	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("finance.GetROIByCrop: %w", err)
	}
	defer rows.Close()

	var results []repository.CropROIResult
	for rows.Next() {
		var row repository.CropROIResult
		if err := rows.Scan(
			&row.CropID,
			&row.CropName,
			&row.Status,
			&row.Revenue,
			&row.TotalExpenses,
			&row.NetProfit,
			&row.ROIPercentage,
		); err != nil {
			return nil, fmt.Errorf("finance.GetROIByCrop scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetROIByPeriod agrupa cultivos HARVESTED/SOLD por bucket temporal usando
// COALESCE(harvest_date, planting_date) como fecha de referencia.
// El avg_roi_percentage promedia el ROI de los cultivos con gastos; un bucket
// cuya suma de gastos es cero reporta 0, nunca NULL ni división por cero.
func (r *FinanceRepo) GetROIByPeriod(
	ctx context.Context,
	period string,
) ([]repository.PeriodROIResult, error) {
	format, ok := periodFormats[period]
	if !ok {
		return nil, fmt.Errorf("finance.GetROIByPeriod: período desconocido %q", period)
	}

	const query = `
	SELECT
	    to_char(COALESCE(c.harvest_date, c.planting_date), $1)             AS period,
	    COUNT(*)                                                           AS crop_count,
	    COALESCE(SUM(c.actual_yield * c.market_price), 0)                  AS total_revenue,
	    COALESCE(SUM(c.total_expenses), 0)                                 AS total_expenses,
	    CASE
	        WHEN SUM(c.total_expenses) > 0
	        THEN COALESCE(ROUND(AVG(
	            CASE WHEN c.total_expenses > 0
	            THEN (COALESCE(c.actual_yield * c.market_price, 0) - c.total_expenses)
	                 / c.total_expenses * 100
	            END), 2), 0)
	        ELSE 0
	    END                                                                AS avg_roi_percentage,
	    ROUND(AVG(COALESCE(c.actual_yield * c.market_price, 0) - c.total_expenses), 2) AS avg_net_profit
	FROM crops c
	WHERE c.status IN ('HARVESTED', 'SOLD')
	  AND COALESCE(c.harvest_date, c.planting_date) IS NOT NULL
	GROUP BY period
	ORDER BY period DESC`

	rows, err := r.pool.Query(ctx, query, format)
	if err != nil {
		return nil, fmt.Errorf("finance.GetROIByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.PeriodROIResult
	for rows.Next() {
		var row repository.PeriodROIResult
		if err := rows.Scan(
			&row.Period,
			&row.CropCount,
			&row.TotalRevenue,
			&row.TotalExpenses,
			&row.AvgROIPercentage,
			&row.AvgNetProfit,
		); err != nil {
			return nil, fmt.Errorf("finance.GetROIByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
