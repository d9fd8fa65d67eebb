package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductionRecordRequest entrada para registrar producción.
type CreateProductionRecordRequest struct {
	FlockID     string          `json:"flock_id"`
	LivestockID *string         `json:"livestock_id"`
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Date        time.Time       `json:"date"`
}

// ProductionRecordResponse salida de un registro de producción.
// Revenue = Quantity * SalePrice, derivado por el use case.
type ProductionRecordResponse struct {
	ID          string          `json:"id"`
	FlockID     string          `json:"flock_id"`
	LivestockID *string         `json:"livestock_id"`
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Revenue     decimal.Decimal `json:"revenue"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductionRecordListResponse lista paginada de registros de producción.
type ProductionRecordListResponse struct {
	Items []ProductionRecordResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
