package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos de cultivo. Toda escritura corre
// dentro de una transacción que recalcula crops.total_expenses, así la suma
// denormalizada nunca queda desfasada respecto de la tabla expenses.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	cropRepo repository.CropRepository
	tx       ExpenseTxRunner
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, cropRepo repository.CropRepository, tx ExpenseTxRunner) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, cropRepo: cropRepo, tx: tx}
}

// Create registra un gasto de un cultivo existente.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.CropID == "" || in.Category == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	crop, err := uc.cropRepo.GetByID(in.CropID)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		CropID:      in.CropID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunExpense(ctx, func(expenseRepo repository.ExpenseRepository, cropRepo repository.CropRepository) error {
		if err := expenseRepo.Create(expense); err != nil {
			return err
		}
		return cropRepo.RecomputeTotalExpenses(in.CropID)
	})
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	return toExpenseResponse(expense), nil
}

// ListByCrop lista los gastos de un cultivo con paginación.
func (uc *ExpenseUseCase) ListByCrop(cropID string, limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.ListByCrop(cropID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un gasto y recalcula el total del cultivo en la misma transacción.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	expense.UpdatedAt = time.Now()
	err = uc.tx.RunExpense(ctx, func(expenseRepo repository.ExpenseRepository, cropRepo repository.CropRepository) error {
		if err := expenseRepo.Update(expense); err != nil {
			return err
		}
		return cropRepo.RecomputeTotalExpenses(expense.CropID)
	})
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto y recalcula el total del cultivo en la misma transacción.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunExpense(ctx, func(expenseRepo repository.ExpenseRepository, cropRepo repository.CropRepository) error {
		if err := expenseRepo.Delete(id); err != nil {
			return err
		}
		return cropRepo.RecomputeTotalExpenses(expense.CropID)
	})
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		CropID:      e.CropID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
