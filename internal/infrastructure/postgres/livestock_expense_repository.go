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

var _ repository.LivestockExpenseRepository = (*LivestockExpenseRepo)(nil)

// LivestockExpenseRepo implementación del puerto LivestockExpenseRepository sobre PostgreSQL.
type LivestockExpenseRepo struct {
	q Querier
}

// NewLivestockExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLivestockExpenseRepository(q Querier) *LivestockExpenseRepo {
	return &LivestockExpenseRepo{q: q}
}

const livestockExpenseColumns = `id, flock_id, livestock_id, category, description, amount, date, created_at`

// Create persiste un gasto pecuario.
func (r *LivestockExpenseRepo) Create(expense *entity.LivestockExpense) error {
	query := `
		INSERT INTO livestock_expenses (id, flock_id, livestock_id, category, description, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.FlockID, expense.LivestockID, expense.Category,
		expense.Description, expense.Amount, expense.Date, expense.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert livestock expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto pecuario por ID.
func (r *LivestockExpenseRepo) GetByID(id string) (*entity.LivestockExpense, error) {
	query := `SELECT ` + livestockExpenseColumns + ` FROM livestock_expenses WHERE id = $1`
	var e entity.LivestockExpense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.FlockID, &e.LivestockID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get livestock expense: %w", err)
	}
	return &e, nil
}

// List lista gastos pecuarios; flockID filtra opcionalmente ("" = todos).
func (r *LivestockExpenseRepo) List(flockID string, limit, offset int) ([]*entity.LivestockExpense, error) {
	query := `SELECT ` + livestockExpenseColumns + `
		FROM livestock_expenses
		WHERE ($1::uuid IS NULL OR flock_id = $1)
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, optionalID(flockID), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list livestock expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.LivestockExpense
	for rows.Next() {
		var e entity.LivestockExpense
		if err := rows.Scan(&e.ID, &e.FlockID, &e.LivestockID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan livestock expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto pecuario por ID.
func (r *LivestockExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM livestock_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete livestock expense: %w", err)
	}
	return nil
}
