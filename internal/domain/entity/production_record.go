package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto pecuario.
const (
	ProductEggs  = "eggs"
	ProductMilk  = "milk"
	ProductMeat  = "meat"
	ProductWool  = "wool"
	ProductOther = "other"
)

// ValidProductType verifica que el tipo pertenezca al enum de producción.
func ValidProductType(s string) bool {
	switch s {
	case ProductEggs, ProductMilk, ProductMeat, ProductWool, ProductOther:
		return true
	}
	return false
}

// ProductionRecord registro de producción de un lote (o animal concreto).
// El ingreso del registro es Quantity * SalePrice.
type ProductionRecord struct {
	ID          string
	FlockID     string
	LivestockID *string
	ProductType string
	Quantity    decimal.Decimal
	Unit        string // docenas, litros, kg...
	SalePrice   decimal.Decimal // precio por unidad
	Date        time.Time
	CreatedAt   time.Time
}
