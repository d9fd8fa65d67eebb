package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// FlockSummaryResult agregados crudos de un lote. Cada campo sale de un
// COALESCE(SUM(...), 0) sobre su propia tabla; el use case deriva el neto y
// el ROI (una sola convención de denominador: compra + gastos + tratamientos).
type FlockSummaryResult struct {
	FlockID           string
	FlockName         string
	AnimalCount       int
	PurchaseCost      decimal.Decimal
	SaleRevenue       decimal.Decimal
	ProductionRevenue decimal.Decimal
	TotalExpenses     decimal.Decimal
	MedicalCosts      decimal.Decimal
}

// AnimalSummaryResult agregados crudos de un animal (clave legible: tag_id).
// DaysOwned = COALESCE(sale_date, CURRENT_DATE) − purchase_date, calculado en SQL.
type AnimalSummaryResult struct {
	LivestockID       string
	TagID             string
	FlockID           string
	Status            string
	PurchasePrice     decimal.Decimal
	SaleRevenue       decimal.Decimal
	ProductionRevenue decimal.Decimal
	TotalExpenses     decimal.Decimal
	MedicalCosts      decimal.Decimal
	DaysOwned         int
}

// FlockMetricsResult rollup de un lote individual con conteos por estado.
type FlockMetricsResult struct {
	FlockSummaryResult
	ActiveCount   int
	SoldCount     int
	DeceasedCount int
}

// SummaryRepository consultas de solo lectura para resúmenes financieros
// por lote y por animal. Cada agregado se calcula con subconsultas escalares
// sobre su propia tabla: un LEFT JOIN simultáneo de varias tablas 1-N
// multiplicaría filas y sobrecontaría los SUM.
type SummaryRepository interface {
	// GetFlockSummaries devuelve el resumen de todos los lotes, o del lote
	// indicado si flockID no es nil.
	GetFlockSummaries(ctx context.Context, flockID *string) ([]FlockSummaryResult, error)

	// GetAnimalSummaries devuelve el resumen por animal; animalID filtra por tag_id.
	GetAnimalSummaries(ctx context.Context, animalID *string) ([]AnimalSummaryResult, error)

	// GetFlockMetrics devuelve el rollup de un lote. nil si el lote no existe
	// (el handler lo convierte en 404, nunca en un 200 vacío).
	GetFlockMetrics(ctx context.Context, flockID string) (*FlockMetricsResult, error)
}
