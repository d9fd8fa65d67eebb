package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// FlockUseCase casos de uso CRUD para lotes.
type FlockUseCase struct {
	repo repository.FlockRepository
}

// NewFlockUseCase construye el caso de uso.
func NewFlockUseCase(repo repository.FlockRepository) *FlockUseCase {
	return &FlockUseCase{repo: repo}
}

// Create crea un lote.
func (uc *FlockUseCase) Create(in dto.CreateFlockRequest) (*dto.FlockResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	flock := &entity.Flock{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Breed:             in.Breed,
		PurchaseDate:      in.PurchaseDate,
		TotalPurchaseCost: in.TotalPurchaseCost,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(flock); err != nil {
		return nil, err
	}
	return toFlockResponse(flock), nil
}

// GetByID obtiene un lote por ID.
func (uc *FlockUseCase) GetByID(id string) (*dto.FlockResponse, error) {
	flock, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if flock == nil {
		return nil, nil
	}
	return toFlockResponse(flock), nil
}

// List lista lotes con paginación.
func (uc *FlockUseCase) List(limit, offset int) (*dto.FlockListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FlockResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFlockResponse(f))
	}
	return &dto.FlockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza parcialmente un lote.
func (uc *FlockUseCase) Update(id string, in dto.UpdateFlockRequest) (*dto.FlockResponse, error) {
	flock, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if flock == nil {
		return nil, nil
	}
	if in.Name != nil {
		flock.Name = *in.Name
	}
	if in.Breed != nil {
		flock.Breed = *in.Breed
	}
	if in.PurchaseDate != nil {
		flock.PurchaseDate = in.PurchaseDate
	}
	if in.TotalPurchaseCost != nil {
		flock.TotalPurchaseCost = *in.TotalPurchaseCost
	}
	if in.Notes != nil {
		flock.Notes = *in.Notes
	}
	flock.UpdatedAt = time.Now()
	if err := uc.repo.Update(flock); err != nil {
		return nil, err
	}
	return toFlockResponse(flock), nil
}

// Delete elimina un lote. Falla con ErrConflict si aún tiene animales o
// registros asociados (restricción de clave foránea).
func (uc *FlockUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toFlockResponse(f *entity.Flock) *dto.FlockResponse {
	if f == nil {
		return nil
	}
	return &dto.FlockResponse{
		ID:                f.ID,
		Name:              f.Name,
		Breed:             f.Breed,
		PurchaseDate:      f.PurchaseDate,
		TotalPurchaseCost: f.TotalPurchaseCost,
		Notes:             f.Notes,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}
