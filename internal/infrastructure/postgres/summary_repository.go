package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo consultas de solo lectura para resúmenes financieros por lote y
// por animal. Cada agregado se calcula con una subconsulta escalar sobre su
// propia tabla: un LEFT JOIN simultáneo de sales, production_records,
// livestock_expenses y medical_treatments multiplicaría las filas y los SUM
// saldrían sobrecontados. Un join ausente vale 0, nunca NULL.
type SummaryRepo struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository construye el adaptador de resúmenes financieros.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

const flockSummarySelect = `
	SELECT
	    f.id,
	    f.name,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id)                                    AS animal_count,
	    f.total_purchase_cost                                                                         AS purchase_cost,
	    COALESCE((SELECT SUM(s.total_amount) FROM sales s WHERE s.flock_id = f.id), 0)                AS sale_revenue,
	    COALESCE((SELECT SUM(p.quantity * p.sale_price)
	              FROM production_records p WHERE p.flock_id = f.id), 0)                              AS production_revenue,
	    COALESCE((SELECT SUM(e.amount) FROM livestock_expenses e WHERE e.flock_id = f.id), 0)         AS total_expenses,
	    COALESCE((SELECT SUM(m.cost) FROM medical_treatments m WHERE m.flock_id = f.id), 0)           AS medical_costs
	FROM flocks f`

// GetFlockSummaries devuelve los agregados de todos los lotes, o del indicado.
func (r *SummaryRepo) GetFlockSummaries(
	ctx context.Context,
	flockID *string,
) ([]repository.FlockSummaryResult, error) {
	query := flockSummarySelect + `
	WHERE ($1::uuid IS NULL OR f.id = $1)
	ORDER BY f.name`

	rows, err := r.pool.Query(ctx, query, flockID)
	if err != nil {
		return nil, fmt.Errorf("summary.GetFlockSummaries: %w", err)
	}
	defer rows.Close()

	var results []repository.FlockSummaryResult
	for rows.Next() {
		var row repository.FlockSummaryResult
		if err := rows.Scan(
			&row.FlockID,
			&row.FlockName,
			&row.AnimalCount,
			&row.PurchaseCost,
			&row.SaleRevenue,
			&row.ProductionRevenue,
			&row.TotalExpenses,
			&row.MedicalCosts,
		); err != nil {
			return nil, fmt.Errorf("summary.GetFlockSummaries scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetAnimalSummaries devuelve los agregados por animal; animalID filtra por tag_id.
// days_owned usa la fecha de venta si existe y si no el día de hoy.
func (r *SummaryRepo) GetAnimalSummaries(
	ctx context.Context,
	animalID *string,
) ([]repository.AnimalSummaryResult, error) {
	const query = `
	SELECT
	    l.id,
	    l.tag_id,
	    l.flock_id,
	    l.status,
	    l.purchase_price,
	    COALESCE((SELECT SUM(s.total_amount) FROM sales s WHERE s.livestock_id = l.id), 0)            AS sale_revenue,
	    COALESCE((SELECT SUM(p.quantity * p.sale_price)
	              FROM production_records p WHERE p.livestock_id = l.id), 0)                          AS production_revenue,
	    COALESCE((SELECT SUM(e.amount) FROM livestock_expenses e WHERE e.livestock_id = l.id), 0)     AS total_expenses,
	    COALESCE((SELECT SUM(m.cost) FROM medical_treatments m WHERE m.livestock_id = l.id), 0)       AS medical_costs,
	    COALESCE(COALESCE(l.sale_date, CURRENT_DATE) - l.purchase_date, 0)                            AS days_owned
	FROM livestock l
	WHERE ($1::text IS NULL OR l.tag_id = $1)
	ORDER BY l.tag_id`

	rows, err := r.pool.Query(ctx, query, animalID)
	if err != nil {
		return nil, fmt.Errorf("summary.GetAnimalSummaries: %w", err)
	}
	defer rows.Close()

	var results []repository.AnimalSummaryResult
	for rows.Next() {
		var row repository.AnimalSummaryResult
		if err := rows.Scan(
			&row.LivestockID,
			&row.TagID,
			&row.FlockID,
			&row.Status,
			&row.PurchasePrice,
			&row.SaleRevenue,
			&row.ProductionRevenue,
			&row.TotalExpenses,
			&row.MedicalCosts,
			&row.DaysOwned,
		); err != nil {
			return nil, fmt.Errorf("summary.GetAnimalSummaries scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetFlockMetrics devuelve el rollup de un lote con conteos por estado.
// nil (sin error) cuando el lote no existe.
func (r *SummaryRepo) GetFlockMetrics(
	ctx context.Context,
	flockID string,
) (*repository.FlockMetricsResult, error) {
	const query = `
	SELECT
	    f.id,
	    f.name,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id)                                    AS animal_count,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id AND l.status = 'active')            AS active_count,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id AND l.status = 'sold')              AS sold_count,
	    (SELECT COUNT(*) FROM livestock l WHERE l.flock_id = f.id AND l.status = 'deceased')          AS deceased_count,
	    f.total_purchase_cost                                                                         AS purchase_cost,
	    COALESCE((SELECT SUM(s.total_amount) FROM sales s WHERE s.flock_id = f.id), 0)                AS sale_revenue,
	    COALESCE((SELECT SUM(p.quantity * p.sale_price)
	              FROM production_records p WHERE p.flock_id = f.id), 0)                              AS production_revenue,
	    COALESCE((SELECT SUM(e.amount) FROM livestock_expenses e WHERE e.flock_id = f.id), 0)         AS total_expenses,
	    COALESCE((SELECT SUM(m.cost) FROM medical_treatments m WHERE m.flock_id = f.id), 0)           AS medical_costs
	FROM flocks f
	WHERE f.id = $1`

	var row repository.FlockMetricsResult
	err := r.pool.QueryRow(ctx, query, flockID).Scan(
		&row.FlockID,
		&row.FlockName,
		&row.AnimalCount,
		&row.ActiveCount,
		&row.SoldCount,
		&row.DeceasedCount,
		&row.PurchaseCost,
		&row.SaleRevenue,
		&row.ProductionRevenue,
		&row.TotalExpenses,
		&row.MedicalCosts,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("summary.GetFlockMetrics: %w", err)
	}
	return &row, nil
}
