package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCropRequest entrada para crear un cultivo.
type CreateCropRequest struct {
	Name          string           `json:"name"`
	Status        string           `json:"status"`
	Area          decimal.Decimal  `json:"area"`
	PlantingDate  *time.Time       `json:"planting_date"`
	HarvestDate   *time.Time       `json:"harvest_date"`
	ExpectedYield decimal.Decimal  `json:"expected_yield"`
	ActualYield   *decimal.Decimal `json:"actual_yield"`
	MarketPrice   *decimal.Decimal `json:"market_price"`
}

// UpdateCropRequest entrada para actualizar un cultivo (campos opcionales).
// TotalExpenses no es actualizable: lo mantiene la transacción de gastos.
type UpdateCropRequest struct {
	Name          *string          `json:"name"`
	Status        *string          `json:"status"`
	Area          *decimal.Decimal `json:"area"`
	PlantingDate  *time.Time       `json:"planting_date"`
	HarvestDate   *time.Time       `json:"harvest_date"`
	ExpectedYield *decimal.Decimal `json:"expected_yield"`
	ActualYield   *decimal.Decimal `json:"actual_yield"`
	MarketPrice   *decimal.Decimal `json:"market_price"`
}

// CropResponse salida de un cultivo.
type CropResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Status        string           `json:"status"`
	Area          decimal.Decimal  `json:"area"`
	PlantingDate  *time.Time       `json:"planting_date"`
	HarvestDate   *time.Time       `json:"harvest_date"`
	ExpectedYield decimal.Decimal  `json:"expected_yield"`
	ActualYield   *decimal.Decimal `json:"actual_yield"`
	MarketPrice   *decimal.Decimal `json:"market_price"`
	TotalExpenses decimal.Decimal  `json:"total_expenses"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CropListResponse lista paginada de cultivos.
type CropListResponse struct {
	Items []CropResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
