package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	SaleAnimal  = "animal"
	SaleProduct = "product"
)

// Sale venta registrada. Una venta de tipo "animal" referencia al animal vendido
// y su registro marca al animal como sold dentro de la misma transacción;
// eliminarla revierte el estado (acción compensatoria transaccional).
type Sale struct {
	ID          string
	LivestockID *string
	FlockID     *string
	SaleType    string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Buyer       string
	Date        time.Time
	CreatedAt   time.Time
}
