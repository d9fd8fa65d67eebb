package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLivestockRequest entrada para registrar un animal.
type CreateLivestockRequest struct {
	FlockID       string          `json:"flock_id"`
	TagID         string          `json:"tag_id"`
	Species       string          `json:"species"`
	Breed         string          `json:"breed"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  *time.Time      `json:"purchase_date"`
}

// UpdateLivestockRequest entrada para actualizar un animal (campos opcionales).
// El estado 'sold' no se asigna por aquí: solo la transacción de venta lo hace.
type UpdateLivestockRequest struct {
	Species       *string          `json:"species"`
	Breed         *string          `json:"breed"`
	Status        *string          `json:"status"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
}

// LivestockResponse salida de un animal.
type LivestockResponse struct {
	ID            string           `json:"id"`
	FlockID       string           `json:"flock_id"`
	TagID         string           `json:"tag_id"`
	Species       string           `json:"species"`
	Breed         string           `json:"breed"`
	Status        string           `json:"status"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	SaleDate      *time.Time       `json:"sale_date"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// LivestockListResponse lista paginada de animales.
type LivestockListResponse struct {
	Items []LivestockResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateLivestockExpenseRequest entrada para registrar un gasto pecuario.
// LivestockID es opcional: sin él, el gasto es del lote completo.
type CreateLivestockExpenseRequest struct {
	FlockID     string          `json:"flock_id"`
	LivestockID *string         `json:"livestock_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// LivestockExpenseResponse salida de un gasto pecuario.
type LivestockExpenseResponse struct {
	ID          string          `json:"id"`
	FlockID     string          `json:"flock_id"`
	LivestockID *string         `json:"livestock_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LivestockExpenseListResponse lista paginada de gastos pecuarios.
type LivestockExpenseListResponse struct {
	Items []LivestockExpenseResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
