package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FlockFinancialRow agregados crudos por lote para el reporte pecuario.
// El use case deriva la inversión total (compra + gastos + tratamientos) y el neto.
type FlockFinancialRow struct {
	FlockID           string
	FlockName         string
	TotalAnimals      int
	ActiveAnimals     int
	SoldAnimals       int
	DeceasedAnimals   int
	PurchaseCost      decimal.Decimal
	TotalExpenses     decimal.Decimal
	MedicalCosts      decimal.Decimal
	SaleRevenue       decimal.Decimal
	ProductionRevenue decimal.Decimal
}

// ProductionSummaryRow totales por tipo de producto.
type ProductionSummaryRow struct {
	ProductType   string
	RecordCount   int
	TotalQuantity decimal.Decimal
	TotalRevenue  decimal.Decimal
}

// ExpenseBreakdownRow totales por categoría de gasto pecuario.
type ExpenseBreakdownRow struct {
	Category    string
	EntryCount  int
	TotalAmount decimal.Decimal
}

// LivestockReportRepository consultas de solo lectura del reporte pecuario
// integral. Las tres consultas son independientes; el use case las ejecuta en
// paralelo y las devuelve lado a lado sin cruzarlas.
type LivestockReportRepository interface {
	GetFlockFinancials(ctx context.Context) ([]FlockFinancialRow, error)

	// GetProductionSummary filtra por rango de fechas opcional.
	// Las fechas viajan como parámetros posicionales, nunca interpoladas en el SQL.
	GetProductionSummary(ctx context.Context, startDate, endDate *time.Time) ([]ProductionSummaryRow, error)

	GetExpenseBreakdown(ctx context.Context) ([]ExpenseBreakdownRow, error)
}
