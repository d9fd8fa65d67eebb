package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
// Para sale_type=animal, TagID es obligatorio y el animal debe estar activo;
// para sale_type=product, FlockID es obligatorio.
type CreateSaleRequest struct {
	SaleType    string          `json:"sale_type"`
	TagID       string          `json:"tag_id"`
	FlockID     *string         `json:"flock_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Buyer       string          `json:"buyer"`
	Date        time.Time       `json:"date"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	LivestockID *string         `json:"livestock_id"`
	FlockID     *string         `json:"flock_id"`
	SaleType    string          `json:"sale_type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Buyer       string          `json:"buyer"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
