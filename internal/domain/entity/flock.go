package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flock lote de animales comprado y contabilizado como unidad.
type Flock struct {
	ID                string
	Name              string
	Breed             string
	PurchaseDate      *time.Time
	TotalPurchaseCost decimal.Decimal
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
