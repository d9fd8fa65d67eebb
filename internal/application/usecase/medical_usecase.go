package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// MedicalUseCase casos de uso para tratamientos veterinarios.
type MedicalUseCase struct {
	repo          repository.MedicalTreatmentRepository
	livestockRepo repository.LivestockRepository
}

// NewMedicalUseCase construye el caso de uso.
func NewMedicalUseCase(repo repository.MedicalTreatmentRepository, livestockRepo repository.LivestockRepository) *MedicalUseCase {
	return &MedicalUseCase{repo: repo, livestockRepo: livestockRepo}
}

// Create registra un tratamiento. El animal se identifica por arete y el
// lote se resuelve desde el animal, no viaja en la petición.
func (uc *MedicalUseCase) Create(in dto.CreateMedicalTreatmentRequest) (*dto.MedicalTreatmentResponse, error) {
	if in.TagID == "" || in.Treatment == "" || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	animal, err := uc.livestockRepo.GetByTagID(in.TagID)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	treatment := &entity.MedicalTreatment{
		ID:          uuid.New().String(),
		LivestockID: animal.ID,
		FlockID:     animal.FlockID,
		Treatment:   in.Treatment,
		Medication:  in.Medication,
		Cost:        in.Cost,
		Date:        in.Date,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(treatment); err != nil {
		return nil, err
	}
	return toMedicalTreatmentResponse(treatment), nil
}

// List lista tratamientos, filtrables por animal (arete).
func (uc *MedicalUseCase) List(tagID string, limit, offset int) (*dto.MedicalTreatmentListResponse, error) {
	livestockID := ""
	if tagID != "" {
		animal, err := uc.livestockRepo.GetByTagID(tagID)
		if err != nil {
			return nil, err
		}
		if animal == nil {
			return nil, domain.ErrNotFound
		}
		livestockID = animal.ID
	}
	list, err := uc.repo.List(livestockID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicalTreatmentResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toMedicalTreatmentResponse(t))
	}
	return &dto.MedicalTreatmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un tratamiento.
func (uc *MedicalUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMedicalTreatmentResponse(t *entity.MedicalTreatment) *dto.MedicalTreatmentResponse {
	if t == nil {
		return nil
	}
	return &dto.MedicalTreatmentResponse{
		ID:          t.ID,
		LivestockID: t.LivestockID,
		FlockID:     t.FlockID,
		Treatment:   t.Treatment,
		Medication:  t.Medication,
		Cost:        t.Cost,
		Date:        t.Date,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
	}
}
