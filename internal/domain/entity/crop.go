package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un cultivo.
const (
	CropPlanned         = "PLANNED"
	CropPlanted         = "PLANTED"
	CropGrowing         = "GROWING"
	CropReadyForHarvest = "READY_FOR_HARVEST"
	CropHarvested       = "HARVESTED"
	CropSold            = "SOLD"
	CropFailed          = "FAILED"
)

// ValidCropStatus verifica que el estado pertenezca al enum de cultivos.
func ValidCropStatus(s string) bool {
	switch s {
	case CropPlanned, CropPlanted, CropGrowing, CropReadyForHarvest,
		CropHarvested, CropSold, CropFailed:
		return true
	}
	return false
}

// Crop representa un cultivo de la finca.
// TotalExpenses es una suma denormalizada de la tabla expenses: cada escritura
// de un gasto la recalcula dentro de la misma transacción (ver TxRunner).
type Crop struct {
	ID            string
	Name          string
	Status        string
	Area          decimal.Decimal // hectáreas
	PlantingDate  *time.Time
	HarvestDate   *time.Time
	ExpectedYield decimal.Decimal // kg esperados
	ActualYield   *decimal.Decimal
	MarketPrice   *decimal.Decimal // precio por kg
	TotalExpenses decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
