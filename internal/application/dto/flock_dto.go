package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFlockRequest entrada para crear un lote.
type CreateFlockRequest struct {
	Name              string          `json:"name"`
	Breed             string          `json:"breed"`
	PurchaseDate      *time.Time      `json:"purchase_date"`
	TotalPurchaseCost decimal.Decimal `json:"total_purchase_cost"`
	Notes             string          `json:"notes"`
}

// UpdateFlockRequest entrada para actualizar un lote (campos opcionales).
type UpdateFlockRequest struct {
	Name              *string          `json:"name"`
	Breed             *string          `json:"breed"`
	PurchaseDate      *time.Time       `json:"purchase_date"`
	TotalPurchaseCost *decimal.Decimal `json:"total_purchase_cost"`
	Notes             *string          `json:"notes"`
}

// FlockResponse salida de un lote.
type FlockResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Breed             string          `json:"breed"`
	PurchaseDate      *time.Time      `json:"purchase_date"`
	TotalPurchaseCost decimal.Decimal `json:"total_purchase_cost"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// FlockListResponse lista paginada de lotes.
type FlockListResponse struct {
	Items []FlockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
