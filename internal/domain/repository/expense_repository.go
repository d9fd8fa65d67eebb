package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para gastos de cultivo.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	ListByCrop(cropID string, limit, offset int) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
	DeleteByCrop(cropID string) error
}
