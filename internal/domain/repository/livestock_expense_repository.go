package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// LivestockExpenseRepository puerto de persistencia para gastos pecuarios.
type LivestockExpenseRepository interface {
	Create(expense *entity.LivestockExpense) error
	GetByID(id string) (*entity.LivestockExpense, error)
	List(flockID string, limit, offset int) ([]*entity.LivestockExpense, error)
	Delete(id string) error
}
