package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// MedicalTreatmentRepository puerto de persistencia para tratamientos veterinarios.
type MedicalTreatmentRepository interface {
	Create(treatment *entity.MedicalTreatment) error
	GetByID(id string) (*entity.MedicalTreatment, error)
	List(livestockID string, limit, offset int) ([]*entity.MedicalTreatment, error)
	Delete(id string) error
}
