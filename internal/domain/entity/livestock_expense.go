package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto pecuario.
const (
	LEFeed      = "feed"
	LEVet       = "veterinary"
	LEHousing   = "housing"
	LELabor     = "labor"
	LETransport = "transport"
	LEOther     = "other"
)

// LivestockExpense gasto de un lote; LivestockID opcionalmente lo ata a un animal concreto.
type LivestockExpense struct {
	ID          string
	FlockID     string
	LivestockID *string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
}
