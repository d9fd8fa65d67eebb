package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un animal. Un animal 'sold' debe tener SalePrice y SaleDate;
// la transición se hace solo dentro de la transacción de venta (ver SaleUseCase).
const (
	LivestockActive      = "active"
	LivestockSold        = "sold"
	LivestockDeceased    = "deceased"
	LivestockTransferred = "transferred"
)

// ValidLivestockStatus verifica que el estado pertenezca al enum de animales.
func ValidLivestockStatus(s string) bool {
	switch s {
	case LivestockActive, LivestockSold, LivestockDeceased, LivestockTransferred:
		return true
	}
	return false
}

// Livestock animal individual dentro de un lote.
// TagID es la clave legible única del animal (arete); toda consulta por animal
// usa esta columna.
type Livestock struct {
	ID            string
	FlockID       string
	TagID         string
	Species       string
	Breed         string
	Status        string
	PurchasePrice decimal.Decimal
	PurchaseDate  *time.Time
	SalePrice     *decimal.Decimal
	SaleDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
