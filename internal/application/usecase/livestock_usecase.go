package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// LivestockUseCase casos de uso CRUD para animales. El paso a 'sold' no se
// hace por aquí: solo la transacción de venta (SaleUseCase) marca animales
// como vendidos y solo ella fija sale_price/sale_date.
type LivestockUseCase struct {
	repo      repository.LivestockRepository
	flockRepo repository.FlockRepository
}

// NewLivestockUseCase construye el caso de uso.
func NewLivestockUseCase(repo repository.LivestockRepository, flockRepo repository.FlockRepository) *LivestockUseCase {
	return &LivestockUseCase{repo: repo, flockRepo: flockRepo}
}

// Create registra un animal en un lote existente. El tag_id debe ser único.
func (uc *LivestockUseCase) Create(in dto.CreateLivestockRequest) (*dto.LivestockResponse, error) {
	if in.FlockID == "" || in.TagID == "" {
		return nil, domain.ErrInvalidInput
	}
	flock, err := uc.flockRepo.GetByID(in.FlockID)
	if err != nil {
		return nil, err
	}
	if flock == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	animal := &entity.Livestock{
		ID:            uuid.New().String(),
		FlockID:       in.FlockID,
		TagID:         in.TagID,
		Species:       in.Species,
		Breed:         in.Breed,
		Status:        entity.LivestockActive,
		PurchasePrice: in.PurchasePrice,
		PurchaseDate:  in.PurchaseDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(animal); err != nil {
		return nil, err
	}
	return toLivestockResponse(animal), nil
}

// GetByTagID obtiene un animal por su arete.
func (uc *LivestockUseCase) GetByTagID(tagID string) (*dto.LivestockResponse, error) {
	animal, err := uc.repo.GetByTagID(tagID)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, nil
	}
	return toLivestockResponse(animal), nil
}

// List lista animales, filtrables por lote y estado.
func (uc *LivestockUseCase) List(flockID, status string, limit, offset int) (*dto.LivestockListResponse, error) {
	if status != "" && !entity.ValidLivestockStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(flockID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LivestockResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toLivestockResponse(a))
	}
	return &dto.LivestockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza parcialmente un animal identificado por su arete.
// Rechaza el estado 'sold': esa transición pertenece a la venta transaccional.
func (uc *LivestockUseCase) Update(tagID string, in dto.UpdateLivestockRequest) (*dto.LivestockResponse, error) {
	animal, err := uc.repo.GetByTagID(tagID)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !entity.ValidLivestockStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if *in.Status == entity.LivestockSold {
			return nil, domain.ErrConflict
		}
		animal.Status = *in.Status
	}
	if in.Species != nil {
		animal.Species = *in.Species
	}
	if in.Breed != nil {
		animal.Breed = *in.Breed
	}
	if in.PurchasePrice != nil {
		animal.PurchasePrice = *in.PurchasePrice
	}
	if in.PurchaseDate != nil {
		animal.PurchaseDate = in.PurchaseDate
	}
	animal.UpdatedAt = time.Now()
	if err := uc.repo.Update(animal); err != nil {
		return nil, err
	}
	return toLivestockResponse(animal), nil
}

// Delete elimina un animal por su arete.
func (uc *LivestockUseCase) Delete(tagID string) error {
	animal, err := uc.repo.GetByTagID(tagID)
	if err != nil {
		return err
	}
	if animal == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(animal.ID)
}

func toLivestockResponse(a *entity.Livestock) *dto.LivestockResponse {
	if a == nil {
		return nil
	}
	return &dto.LivestockResponse{
		ID:            a.ID,
		FlockID:       a.FlockID,
		TagID:         a.TagID,
		Species:       a.Species,
		Breed:         a.Breed,
		Status:        a.Status,
		PurchasePrice: a.PurchasePrice,
		PurchaseDate:  a.PurchaseDate,
		SalePrice:     a.SalePrice,
		SaleDate:      a.SaleDate,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
