package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// CropUseCase casos de uso CRUD para cultivos. TotalExpenses es de solo
// lectura aquí: lo mantiene la transacción de gastos (ExpenseUseCase).
type CropUseCase struct {
	repo repository.CropRepository
	tx   ExpenseTxRunner
}

// NewCropUseCase construye el caso de uso.
func NewCropUseCase(repo repository.CropRepository, tx ExpenseTxRunner) *CropUseCase {
	return &CropUseCase{repo: repo, tx: tx}
}

// Create crea un cultivo. Status por defecto: PLANNED.
func (uc *CropUseCase) Create(in dto.CreateCropRequest) (*dto.CropResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.CropPlanned
	}
	if !entity.ValidCropStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	crop := &entity.Crop{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Status:        in.Status,
		Area:          in.Area,
		PlantingDate:  in.PlantingDate,
		HarvestDate:   in.HarvestDate,
		ExpectedYield: in.ExpectedYield,
		ActualYield:   in.ActualYield,
		MarketPrice:   in.MarketPrice,
		TotalExpenses: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(crop); err != nil {
		return nil, err
	}
	return toCropResponse(crop), nil
}

// GetByID obtiene un cultivo por ID.
func (uc *CropUseCase) GetByID(id string) (*dto.CropResponse, error) {
	crop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, nil
	}
	return toCropResponse(crop), nil
}

// List lista cultivos, opcionalmente filtrados por estado.
func (uc *CropUseCase) List(status string, limit, offset int) (*dto.CropListResponse, error) {
	if status != "" && !entity.ValidCropStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CropResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCropResponse(c))
	}
	return &dto.CropListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza parcialmente un cultivo: los campos nil conservan su valor.
func (uc *CropUseCase) Update(id string, in dto.UpdateCropRequest) (*dto.CropResponse, error) {
	crop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, nil
	}
	if in.Name != nil {
		crop.Name = *in.Name
	}
	if in.Status != nil {
		if !entity.ValidCropStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		crop.Status = *in.Status
	}
	if in.Area != nil {
		crop.Area = *in.Area
	}
	if in.PlantingDate != nil {
		crop.PlantingDate = in.PlantingDate
	}
	if in.HarvestDate != nil {
		crop.HarvestDate = in.HarvestDate
	}
	if in.ExpectedYield != nil {
		crop.ExpectedYield = *in.ExpectedYield
	}
	if in.ActualYield != nil {
		crop.ActualYield = in.ActualYield
	}
	if in.MarketPrice != nil {
		crop.MarketPrice = in.MarketPrice
	}
	crop.UpdatedAt = time.Now()
	if err := uc.repo.Update(crop); err != nil {
		return nil, err
	}
	return toCropResponse(crop), nil
}

// Delete elimina un cultivo y sus gastos en una sola transacción.
func (uc *CropUseCase) Delete(ctx context.Context, id string) error {
	crop, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if crop == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunExpense(ctx, func(expenseRepo repository.ExpenseRepository, cropRepo repository.CropRepository) error {
		if err := expenseRepo.DeleteByCrop(id); err != nil {
			return err
		}
		return cropRepo.Delete(id)
	})
}

func toCropResponse(c *entity.Crop) *dto.CropResponse {
	if c == nil {
		return nil
	}
	return &dto.CropResponse{
		ID:            c.ID,
		Name:          c.Name,
		Status:        c.Status,
		Area:          c.Area,
		PlantingDate:  c.PlantingDate,
		HarvestDate:   c.HarvestDate,
		ExpectedYield: c.ExpectedYield,
		ActualYield:   c.ActualYield,
		MarketPrice:   c.MarketPrice,
		TotalExpenses: c.TotalExpenses,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
