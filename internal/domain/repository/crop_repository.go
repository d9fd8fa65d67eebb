package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// CropRepository puerto de persistencia para cultivos.
type CropRepository interface {
	Create(crop *entity.Crop) error
	GetByID(id string) (*entity.Crop, error)
	List(status string, limit, offset int) ([]*entity.Crop, error)
	Update(crop *entity.Crop) error
	Delete(id string) error

	// RecomputeTotalExpenses recalcula crops.total_expenses desde la tabla expenses.
	// Debe invocarse en la misma transacción que la escritura del gasto.
	RecomputeTotalExpenses(cropID string) error
}
