package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ProductionUseCase casos de uso para registros de producción.
type ProductionUseCase struct {
	repo      repository.ProductionRecordRepository
	flockRepo repository.FlockRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.ProductionRecordRepository, flockRepo repository.FlockRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo, flockRepo: flockRepo}
}

// Create registra producción de un lote existente.
func (uc *ProductionUseCase) Create(in dto.CreateProductionRecordRequest) (*dto.ProductionRecordResponse, error) {
	if in.FlockID == "" || !entity.ValidProductType(in.ProductType) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	flock, err := uc.flockRepo.GetByID(in.FlockID)
	if err != nil {
		return nil, err
	}
	if flock == nil {
		return nil, domain.ErrNotFound
	}
	record := &entity.ProductionRecord{
		ID:          uuid.New().String(),
		FlockID:     in.FlockID,
		LivestockID: in.LivestockID,
		ProductType: in.ProductType,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		SalePrice:   in.SalePrice,
		Date:        in.Date,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return toProductionRecordResponse(record), nil
}

// List lista registros de producción, filtrables por lote y tipo de producto.
func (uc *ProductionUseCase) List(flockID, productType string, limit, offset int) (*dto.ProductionRecordListResponse, error) {
	if productType != "" && !entity.ValidProductType(productType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(flockID, productType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionRecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toProductionRecordResponse(r))
	}
	return &dto.ProductionRecordListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un registro de producción.
func (uc *ProductionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductionRecordResponse(r *entity.ProductionRecord) *dto.ProductionRecordResponse {
	if r == nil {
		return nil
	}
	return &dto.ProductionRecordResponse{
		ID:          r.ID,
		FlockID:     r.FlockID,
		LivestockID: r.LivestockID,
		ProductType: r.ProductType,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		SalePrice:   r.SalePrice,
		Revenue:     r.Quantity.Mul(r.SalePrice).Round(2),
		Date:        r.Date,
		CreatedAt:   r.CreatedAt,
	}
}
