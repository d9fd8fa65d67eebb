package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.CropRepository = (*CropRepo)(nil)

// CropRepo implementación del puerto CropRepository sobre PostgreSQL (usable con pool o tx).
type CropRepo struct {
	q Querier
}

// NewCropRepository construye el adaptador de persistencia para cultivos. Pasar pool o tx (Querier).
func NewCropRepository(q Querier) *CropRepo {
	return &CropRepo{q: q}
}

const cropColumns = `id, name, status, area, planting_date, harvest_date, expected_yield, actual_yield, market_price, total_expenses, created_at, updated_at`

// Create persiste un nuevo cultivo. TotalExpenses inicia en 0.
func (r *CropRepo) Create(crop *entity.Crop) error {
	query := `
		INSERT INTO crops (id, name, status, area, planting_date, harvest_date, expected_yield, actual_yield, market_price, total_expenses, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		crop.ID, crop.Name, crop.Status, crop.Area, crop.PlantingDate, crop.HarvestDate,
		crop.ExpectedYield, crop.ActualYield, crop.MarketPrice, crop.TotalExpenses,
		crop.CreatedAt, crop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert crop: %w", err)
	}
	return nil
}

// GetByID obtiene un cultivo por ID.
func (r *CropRepo) GetByID(id string) (*entity.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE id = $1`
	var c entity.Crop
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Status, &c.Area, &c.PlantingDate, &c.HarvestDate,
		&c.ExpectedYield, &c.ActualYield, &c.MarketPrice, &c.TotalExpenses,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crop: %w", err)
	}
	return &c, nil
}

// List lista cultivos con paginación; status filtra opcionalmente ("" = todos).
func (r *CropRepo) List(status string, limit, offset int) ([]*entity.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer rows.Close()
	var list []*entity.Crop
	for rows.Next() {
		var c entity.Crop
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.Area, &c.PlantingDate, &c.HarvestDate,
			&c.ExpectedYield, &c.ActualYield, &c.MarketPrice, &c.TotalExpenses,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan crop: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cultivo existente. TotalExpenses no se toca aquí:
// lo mantiene RecomputeTotalExpenses en las escrituras de gastos.
func (r *CropRepo) Update(crop *entity.Crop) error {
	query := `
		UPDATE crops SET name = $2, status = $3, area = $4, planting_date = $5, harvest_date = $6,
			expected_yield = $7, actual_yield = $8, market_price = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		crop.ID, crop.Name, crop.Status, crop.Area, crop.PlantingDate, crop.HarvestDate,
		crop.ExpectedYield, crop.ActualYield, crop.MarketPrice, crop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update crop: %w", err)
	}
	return nil
}

// Delete elimina un cultivo por ID. Los gastos se borran antes en la misma
// transacción (ver CropUseCase.Delete).
func (r *CropRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM crops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	return nil
}

// RecomputeTotalExpenses recalcula el total denormalizado desde expenses.
func (r *CropRepo) RecomputeTotalExpenses(cropID string) error {
	query := `
		UPDATE crops SET
			total_expenses = (SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE crop_id = $1),
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, cropID)
	if err != nil {
		return fmt.Errorf("recompute crop total_expenses: %w", err)
	}
	return nil
}
