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

var _ repository.FlockRepository = (*FlockRepo)(nil)

// FlockRepo implementación del puerto FlockRepository sobre PostgreSQL (usable con pool o tx).
type FlockRepo struct {
	q Querier
}

// NewFlockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFlockRepository(q Querier) *FlockRepo {
	return &FlockRepo{q: q}
}

const flockColumns = `id, name, breed, purchase_date, total_purchase_cost, notes, created_at, updated_at`

// Create persiste un nuevo lote.
func (r *FlockRepo) Create(flock *entity.Flock) error {
	query := `
		INSERT INTO flocks (id, name, breed, purchase_date, total_purchase_cost, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		flock.ID, flock.Name, flock.Breed, flock.PurchaseDate, flock.TotalPurchaseCost,
		flock.Notes, flock.CreatedAt, flock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert flock: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *FlockRepo) GetByID(id string) (*entity.Flock, error) {
	query := `SELECT ` + flockColumns + ` FROM flocks WHERE id = $1`
	var f entity.Flock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Name, &f.Breed, &f.PurchaseDate, &f.TotalPurchaseCost, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flock: %w", err)
	}
	return &f, nil
}

// List lista lotes con paginación.
func (r *FlockRepo) List(limit, offset int) ([]*entity.Flock, error) {
	query := `SELECT ` + flockColumns + ` FROM flocks ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list flocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Flock
	for rows.Next() {
		var f entity.Flock
		if err := rows.Scan(&f.ID, &f.Name, &f.Breed, &f.PurchaseDate, &f.TotalPurchaseCost, &f.Notes, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan flock: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza un lote existente.
func (r *FlockRepo) Update(flock *entity.Flock) error {
	query := `
		UPDATE flocks SET name = $2, breed = $3, purchase_date = $4, total_purchase_cost = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		flock.ID, flock.Name, flock.Breed, flock.PurchaseDate, flock.TotalPurchaseCost, flock.Notes, flock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update flock: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID. Un lote con animales, gastos, producción o
// ventas asociadas viola sus claves foráneas y se reporta como ErrConflict.
func (r *FlockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM flocks WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete flock: %w", err)
	}
	return nil
}
