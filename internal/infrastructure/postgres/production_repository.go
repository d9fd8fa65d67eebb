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

var _ repository.ProductionRecordRepository = (*ProductionRecordRepo)(nil)

// ProductionRecordRepo implementación del puerto ProductionRecordRepository sobre PostgreSQL.
type ProductionRecordRepo struct {
	q Querier
}

// NewProductionRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRecordRepository(q Querier) *ProductionRecordRepo {
	return &ProductionRecordRepo{q: q}
}

const productionColumns = `id, flock_id, livestock_id, product_type, quantity, unit, sale_price, date, created_at`

// Create persiste un registro de producción.
func (r *ProductionRecordRepo) Create(record *entity.ProductionRecord) error {
	query := `
		INSERT INTO production_records (id, flock_id, livestock_id, product_type, quantity, unit, sale_price, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.FlockID, record.LivestockID, record.ProductType,
		record.Quantity, record.Unit, record.SalePrice, record.Date, record.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert production record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de producción por ID.
func (r *ProductionRecordRepo) GetByID(id string) (*entity.ProductionRecord, error) {
	query := `SELECT ` + productionColumns + ` FROM production_records WHERE id = $1`
	var p entity.ProductionRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FlockID, &p.LivestockID, &p.ProductType, &p.Quantity, &p.Unit, &p.SalePrice, &p.Date, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production record: %w", err)
	}
	return &p, nil
}

// List lista registros; flockID y productType filtran opcionalmente ("" = sin filtro).
func (r *ProductionRecordRepo) List(flockID, productType string, limit, offset int) ([]*entity.ProductionRecord, error) {
	query := `SELECT ` + productionColumns + `
		FROM production_records
		WHERE ($1::uuid IS NULL OR flock_id = $1) AND ($2 = '' OR product_type = $2)
		ORDER BY date DESC, created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, optionalID(flockID), productType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production records: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionRecord
	for rows.Next() {
		var p entity.ProductionRecord
		if err := rows.Scan(&p.ID, &p.FlockID, &p.LivestockID, &p.ProductType, &p.Quantity, &p.Unit, &p.SalePrice, &p.Date, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production record: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un registro de producción por ID.
func (r *ProductionRecordRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production record: %w", err)
	}
	return nil
}
