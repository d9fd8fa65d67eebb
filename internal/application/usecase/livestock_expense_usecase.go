package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// LivestockExpenseUseCase casos de uso para gastos pecuarios.
type LivestockExpenseUseCase struct {
	repo      repository.LivestockExpenseRepository
	flockRepo repository.FlockRepository
}

// NewLivestockExpenseUseCase construye el caso de uso.
func NewLivestockExpenseUseCase(repo repository.LivestockExpenseRepository, flockRepo repository.FlockRepository) *LivestockExpenseUseCase {
	return &LivestockExpenseUseCase{repo: repo, flockRepo: flockRepo}
}

// Create registra un gasto de un lote existente.
func (uc *LivestockExpenseUseCase) Create(in dto.CreateLivestockExpenseRequest) (*dto.LivestockExpenseResponse, error) {
	if in.FlockID == "" || in.Category == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	flock, err := uc.flockRepo.GetByID(in.FlockID)
	if err != nil {
		return nil, err
	}
	if flock == nil {
		return nil, domain.ErrNotFound
	}
	expense := &entity.LivestockExpense{
		ID:          uuid.New().String(),
		FlockID:     in.FlockID,
		LivestockID: in.LivestockID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toLivestockExpenseResponse(expense), nil
}

// List lista gastos pecuarios, filtrables por lote.
func (uc *LivestockExpenseUseCase) List(flockID string, limit, offset int) (*dto.LivestockExpenseListResponse, error) {
	list, err := uc.repo.List(flockID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LivestockExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toLivestockExpenseResponse(e))
	}
	return &dto.LivestockExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un gasto pecuario.
func (uc *LivestockExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLivestockExpenseResponse(e *entity.LivestockExpense) *dto.LivestockExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.LivestockExpenseResponse{
		ID:          e.ID,
		FlockID:     e.FlockID,
		LivestockID: e.LivestockID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
