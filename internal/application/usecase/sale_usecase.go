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

// SaleUseCase casos de uso para ventas. Una venta de tipo animal y la marca
// del animal como vendido son una sola unidad atómica (SaleTxRunner); lo
// mismo la eliminación de la venta con su reversión compensatoria.
type SaleUseCase struct {
	repo          repository.SaleRepository
	livestockRepo repository.LivestockRepository
	tx            SaleTxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, livestockRepo repository.LivestockRepository, tx SaleTxRunner) *SaleUseCase {
	return &SaleUseCase{repo: repo, livestockRepo: livestockRepo, tx: tx}
}

// RecordSale registra una venta.
//
// Tipo animal: el arete es obligatorio, el animal debe estar activo, y el
// insert de la venta más el paso a 'sold' corren en la misma transacción.
// Tipo product: requiere flock_id; no toca ningún animal.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.SaleType != entity.SaleAnimal && in.SaleType != entity.SaleProduct {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsZero() {
		in.Quantity = decimal.NewFromInt(1)
	}
	if in.Quantity.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	sale := &entity.Sale{
		ID:          uuid.New().String(),
		SaleType:    in.SaleType,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TotalAmount: in.Quantity.Mul(in.UnitPrice).Round(2),
		Buyer:       in.Buyer,
		Date:        in.Date,
		CreatedAt:   time.Now(),
	}

	switch in.SaleType {
	case entity.SaleAnimal:
		if in.TagID == "" {
			return nil, domain.ErrInvalidInput
		}
		animal, err := uc.livestockRepo.GetByTagID(in.TagID)
		if err != nil {
			return nil, err
		}
		if animal == nil {
			return nil, domain.ErrNotFound
		}
		if animal.Status != entity.LivestockActive {
			return nil, domain.ErrAnimalNotActive
		}
		sale.LivestockID = &animal.ID
		sale.FlockID = &animal.FlockID
		err = uc.tx.RunSale(ctx, func(saleRepo repository.SaleRepository, livestockRepo repository.LivestockRepository) error {
			if err := saleRepo.Create(sale); err != nil {
				return err
			}
			return livestockRepo.MarkSold(animal.ID, sale.TotalAmount, sale.Date)
		})
		if err != nil {
			return nil, err
		}
	case entity.SaleProduct:
		if in.FlockID == nil || *in.FlockID == "" {
			return nil, domain.ErrInvalidInput
		}
		sale.FlockID = in.FlockID
		if err := uc.repo.Create(sale); err != nil {
			return nil, err
		}
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista ventas, filtrables por lote y tipo.
func (uc *SaleUseCase) List(flockID, saleType string, limit, offset int) (*dto.SaleListResponse, error) {
	if saleType != "" && saleType != entity.SaleAnimal && saleType != entity.SaleProduct {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(flockID, saleType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DeleteSale elimina una venta. Si era de tipo animal, devuelve el animal a
// 'active' y anula sale_price/sale_date en la misma transacción.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sale.SaleType == entity.SaleAnimal && sale.LivestockID != nil {
		livestockID := *sale.LivestockID
		return uc.tx.RunSale(ctx, func(saleRepo repository.SaleRepository, livestockRepo repository.LivestockRepository) error {
			if err := saleRepo.Delete(id); err != nil {
				return err
			}
			return livestockRepo.RevertSale(livestockID)
		})
	}
	return uc.repo.Delete(id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		LivestockID: s.LivestockID,
		FlockID:     s.FlockID,
		SaleType:    s.SaleType,
		Description: s.Description,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		Buyer:       s.Buyer,
		Date:        s.Date,
		CreatedAt:   s.CreatedAt,
	}
}
