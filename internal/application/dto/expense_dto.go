package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto de cultivo.
type CreateExpenseRequest struct {
	CropID      string          `json:"crop_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// UpdateExpenseRequest entrada para actualizar un gasto (campos opcionales).
// CropID no es actualizable; un gasto no se mueve de cultivo.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
}

// ExpenseResponse salida de un gasto de cultivo.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	CropID      string          `json:"crop_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseListResponse lista paginada de gastos de un cultivo.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
