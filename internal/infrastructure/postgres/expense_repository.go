package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, crop_id, category, description, amount, date, created_at, updated_at`

// Create persiste un gasto de cultivo.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, crop_id, category, description, amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.CropID, expense.Category, expense.Description,
		expense.Amount, expense.Date, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // el cultivo no existe
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CropID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// ListByCrop lista los gastos de un cultivo, más recientes primero.
func (r *ExpenseRepo) ListByCrop(cropID string, limit, offset int) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE crop_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, cropID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.CropID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un gasto existente.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses SET category = $2, description = $3, amount = $4, date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Category, expense.Description, expense.Amount, expense.Date, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// DeleteByCrop elimina todos los gastos de un cultivo (cascada manual dentro
// de la transacción de borrado del cultivo).
func (r *ExpenseRepo) DeleteByCrop(cropID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE crop_id = $1`, cropID)
	if err != nil {
		return fmt.Errorf("delete expenses by crop: %w", err)
	}
	return nil
}
