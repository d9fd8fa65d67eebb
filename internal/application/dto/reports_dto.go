package dto

import "github.com/shopspring/decimal"

// FlockFinancialDTO fila del resumen financiero del reporte pecuario.
// TotalInvestment = compra + gastos + tratamientos; NetProfitLoss = ingresos − inversión.
type FlockFinancialDTO struct {
	FlockID           string          `json:"flock_id"`
	FlockName         string          `json:"flock_name"`
	TotalAnimals      int             `json:"total_animals"`
	ActiveAnimals     int             `json:"active_animals"`
	SoldAnimals       int             `json:"sold_animals"`
	DeceasedAnimals   int             `json:"deceased_animals"`
	PurchaseCost      decimal.Decimal `json:"purchase_cost"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	MedicalCosts      decimal.Decimal `json:"medical_costs"`
	SaleRevenue       decimal.Decimal `json:"sale_revenue"`
	ProductionRevenue decimal.Decimal `json:"production_revenue"`
	TotalInvestment   decimal.Decimal `json:"total_investment"`
	NetProfitLoss     decimal.Decimal `json:"net_profit_loss"`
}

// ProductionSummaryDTO totales por tipo de producto.
type ProductionSummaryDTO struct {
	ProductType   string          `json:"product_type"`
	RecordCount   int             `json:"record_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// ExpenseBreakdownDTO totales por categoría de gasto pecuario.
type ExpenseBreakdownDTO struct {
	Category    string          `json:"category"`
	EntryCount  int             `json:"entry_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// LivestockReportDTO respuesta de GET /api/reports/livestock: tres secciones
// independientes, calculadas en paralelo y devueltas lado a lado.
type LivestockReportDTO struct {
	FinancialSummary  []FlockFinancialDTO    `json:"financial_summary"`
	ProductionSummary []ProductionSummaryDTO `json:"production_summary"`
	ExpenseBreakdown  []ExpenseBreakdownDTO  `json:"expense_breakdown"`
	Timeframe         TimeframeDTO           `json:"timeframe"`
}
