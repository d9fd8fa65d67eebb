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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, livestock_id, flock_id, sale_type, description, quantity, unit_price, total_amount, buyer, date, created_at`

// Create persiste una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, livestock_id, flock_id, sale_type, description, quantity, unit_price, total_amount, buyer, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.LivestockID, sale.FlockID, sale.SaleType, sale.Description,
		sale.Quantity, sale.UnitPrice, sale.TotalAmount, sale.Buyer, sale.Date, sale.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.LivestockID, &s.FlockID, &s.SaleType, &s.Description,
		&s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.Buyer, &s.Date, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas; flockID y saleType filtran opcionalmente ("" = sin filtro).
func (r *SaleRepo) List(flockID, saleType string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales
		WHERE ($1::uuid IS NULL OR flock_id = $1) AND ($2 = '' OR sale_type = $2)
		ORDER BY date DESC, created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, optionalID(flockID), saleType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.LivestockID, &s.FlockID, &s.SaleType, &s.Description,
			&s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.Buyer, &s.Date, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
