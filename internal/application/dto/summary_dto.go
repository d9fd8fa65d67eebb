package dto

import "github.com/shopspring/decimal"

// FlockSummaryDTO resumen financiero de un lote. NetProfitLoss y
// ROIPercentage los deriva el use case a partir de los agregados crudos.
type FlockSummaryDTO struct {
	FlockID           string          `json:"flock_id"`
	FlockName         string          `json:"flock_name"`
	AnimalCount       int             `json:"animal_count"`
	PurchaseCost      decimal.Decimal `json:"purchase_cost"`
	SaleRevenue       decimal.Decimal `json:"sale_revenue"`
	ProductionRevenue decimal.Decimal `json:"production_revenue"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	MedicalCosts      decimal.Decimal `json:"medical_costs"`
	NetProfitLoss     decimal.Decimal `json:"net_profit_loss"`
	ROIPercentage     decimal.Decimal `json:"roi_percentage"`
}

// AnimalSummaryDTO resumen financiero de un animal (clave legible: tag_id).
type AnimalSummaryDTO struct {
	LivestockID       string          `json:"livestock_id"`
	TagID             string          `json:"tag_id"`
	FlockID           string          `json:"flock_id"`
	Status            string          `json:"status"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SaleRevenue       decimal.Decimal `json:"sale_revenue"`
	ProductionRevenue decimal.Decimal `json:"production_revenue"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	MedicalCosts      decimal.Decimal `json:"medical_costs"`
	NetProfitLoss     decimal.Decimal `json:"net_profit_loss"`
	ROIPercentage     decimal.Decimal `json:"roi_percentage"`
	DaysOwned         int             `json:"days_owned"`
}

// FlockMetricsDTO rollup de un lote con conteos por estado.
type FlockMetricsDTO struct {
	FlockSummaryDTO
	ActiveCount   int `json:"active_count"`
	SoldCount     int `json:"sold_count"`
	DeceasedCount int `json:"deceased_count"`
}
