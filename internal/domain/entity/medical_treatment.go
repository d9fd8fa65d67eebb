package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MedicalTreatment tratamiento veterinario aplicado a un animal.
type MedicalTreatment struct {
	ID          string
	LivestockID string
	FlockID     string
	Treatment   string
	Medication  string
	Cost        decimal.Decimal
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
}
