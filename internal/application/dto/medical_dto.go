package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMedicalTreatmentRequest entrada para registrar un tratamiento.
// TagID identifica al animal; el use case resuelve el lote.
type CreateMedicalTreatmentRequest struct {
	TagID      string          `json:"tag_id"`
	Treatment  string          `json:"treatment"`
	Medication string          `json:"medication"`
	Cost       decimal.Decimal `json:"cost"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes"`
}

// MedicalTreatmentResponse salida de un tratamiento veterinario.
type MedicalTreatmentResponse struct {
	ID          string          `json:"id"`
	LivestockID string          `json:"livestock_id"`
	FlockID     string          `json:"flock_id"`
	Treatment   string          `json:"treatment"`
	Medication  string          `json:"medication"`
	Cost        decimal.Decimal `json:"cost"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MedicalTreatmentListResponse lista paginada de tratamientos.
type MedicalTreatmentListResponse struct {
	Items []MedicalTreatmentResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
