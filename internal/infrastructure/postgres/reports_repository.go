package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.LivestockReportRepository = (*LivestockReportRepo)(nil)

// LivestockReportRepo consultas de solo lectura del reporte pecuario integral.
type LivestockReportRepo struct {
	pool *pgxpool.Pool
}

// NewLivestockReportRepository construye el adaptador del reporte pecuario.
func NewLivestockReportRepository(pool *pgxpool.Pool) *LivestockReportRepo {
	return &LivestockReportRepo{pool: pool}
}

// GetFlockFinancials devuelve por lote los conteos de animales por estado y
// los agregados financieros crudos (subconsultas escalares, ver SummaryRepo).
func (r *LivestockReportRepo) GetFlockFinancials(ctx context.Context) ([]repository.FlockFinancialRow, error) {
	const query = `
	SELECT
	    f.id,
	    f.name,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id)                                    AS total_animals,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id AND l.status = 'active')            AS active_animals,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id AND l.status = 'sold')              AS sold_animals,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id AND l.status = 'deceased')          AS deceased_animals,
	    f.total_purchase_cost                                                                         AS purchase_cost,
	    COALESCE((SELECT SUM(e.amount) FROM livestock_expenses e WHERE e.flock_id = f.id), 0)         AS total_expenses,
	    COALESCE((SELECT SUM(m.cost) FROM medical_treatments m WHERE m.flock_id = f.id), 0)           AS medical_costs,
	    COALESCE((SELECT SUM(s.total_amount) FROM sales s WHERE s.flock_id = f.id), 0)                AS sale_revenue,
	    COALESCE((SELECT SUM(p.quantity * p.sale_price)
	              FROM production_records p WHERE p.flock_id = f.id), 0)                              AS production_revenue
	FROM flocks f
	ORDER BY f.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetFlockFinancials: %w", err)
	}
	defer rows.Close()

	var results []repository.FlockFinancialRow
	for rows.Next() {
		var row repository.FlockFinancialRow
		if err := rows.Scan(
			&row.FlockID,
			&row.FlockName,
			&row.TotalAnimals,
			&row.ActiveAnimals,
			&row.SoldAnimals,
			&row.DeceasedAnimals,
			&row.PurchaseCost,
			&row.TotalExpenses,
			&row.MedicalCosts,
			&row.SaleRevenue,
			&row.ProductionRevenue,
		); err != nil {
			return nil, fmt.Errorf("reports.GetFlockFinancials scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetProductionSummary agrupa la producción por tipo de producto.
// El rango de fechas viaja en parámetros posicionales ($1/$2, NULL = sin
// filtro); nunca se interpola en el texto del SQL.
func (r *LivestockReportRepo) GetProductionSummary(
	ctx context.Context,
	startDate, endDate *time.Time,
) ([]repository.ProductionSummaryRow, error) {
	const query = `
	SELECT
	    p.product_type,
	    COUNT(*)                                   AS record_count,
	    COALESCE(SUM(p.quantity), 0)               AS total_quantity,
	    COALESCE(SUM(p.quantity * p.sale_price), 0) AS total_revenue
	FROM production_records p
	WHERE ($1::date IS NULL OR p.date >= $1)
	  AND ($2::date IS NULL OR p.date <= $2)
	GROUP BY p.product_type
	ORDER BY total_revenue DESC`

	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("reports.GetProductionSummary: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductionSummaryRow
	for rows.Next() {
		var row repository.ProductionSummaryRow
		if err := rows.Scan(&row.ProductType, &row.RecordCount, &row.TotalQuantity, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("reports.GetProductionSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetExpenseBreakdown agrupa los gastos pecuarios por categoría.
func (r *LivestockReportRepo) GetExpenseBreakdown(ctx context.Context) ([]repository.ExpenseBreakdownRow, error) {
	const query = `
	SELECT
	    e.category,
	    COUNT(*)                      AS entry_count,
	    COALESCE(SUM(e.amount), 0)    AS total_amount
	FROM livestock_expenses e
	GROUP BY e.category
	ORDER BY total_amount DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetExpenseBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.ExpenseBreakdownRow
	for rows.Next() {
		var row repository.ExpenseBreakdownRow
		if err := rows.Scan(&row.Category, &row.EntryCount, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("reports.GetExpenseBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
