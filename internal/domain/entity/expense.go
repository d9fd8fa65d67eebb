package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto de cultivo.
const (
	ExpenseSeeds      = "seeds"
	ExpenseFertilizer = "fertilizer"
	ExpensePesticide  = "pesticide"
	ExpenseLabor      = "labor"
	ExpenseEquipment  = "equipment"
	ExpenseIrrigation = "irrigation"
	ExpenseOther      = "other"
)

// Expense gasto asociado a un cultivo.
type Expense struct {
	ID          string
	CropID      string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
