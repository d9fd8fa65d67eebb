package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

var _ repository.LivestockRepository = (*LivestockRepo)(nil)

// LivestockRepo implementación del puerto LivestockRepository sobre PostgreSQL (usable con pool o tx).
type LivestockRepo struct {
	q Querier
}

// NewLivestockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLivestockRepository(q Querier) *LivestockRepo {
	return &LivestockRepo{q: q}
}

const livestockColumns = `id, flock_id, tag_id, species, breed, status, purchase_price, purchase_date, sale_price, sale_date, created_at, updated_at`

// Create persiste un nuevo animal. El tag_id es único.
func (r *LivestockRepo) Create(animal *entity.Livestock) error {
	query := `
		INSERT INTO livestock (id, flock_id, tag_id, species, breed, status, purchase_price, purchase_date, sale_price, sale_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		animal.ID, animal.FlockID, animal.TagID, animal.Species, animal.Breed, animal.Status,
		animal.PurchasePrice, animal.PurchaseDate, animal.SalePrice, animal.SaleDate,
		animal.CreatedAt, animal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // el lote no existe
		}
		return fmt.Errorf("insert livestock: %w", err)
	}
	return nil
}

// GetByID obtiene un animal por ID.
func (r *LivestockRepo) GetByID(id string) (*entity.Livestock, error) {
	return r.getBy(`id = $1`, id)
}

// GetByTagID obtiene un animal por su arete (tag_id).
func (r *LivestockRepo) GetByTagID(tagID string) (*entity.Livestock, error) {
	return r.getBy(`tag_id = $1`, tagID)
}

func (r *LivestockRepo) getBy(where, arg string) (*entity.Livestock, error) {
	query := `SELECT ` + livestockColumns + ` FROM livestock WHERE ` + where
	var l entity.Livestock
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&l.ID, &l.FlockID, &l.TagID, &l.Species, &l.Breed, &l.Status,
		&l.PurchasePrice, &l.PurchaseDate, &l.SalePrice, &l.SaleDate,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get livestock: %w", err)
	}
	return &l, nil
}

// List lista animales con filtros opcionales por lote y estado ("" = sin filtro).
func (r *LivestockRepo) List(flockID, status string, limit, offset int) ([]*entity.Livestock, error) {
	query := `SELECT ` + livestockColumns + `
		FROM livestock
		WHERE ($1::uuid IS NULL OR flock_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, optionalID(flockID), status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list livestock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Livestock
	for rows.Next() {
		var l entity.Livestock
		if err := rows.Scan(&l.ID, &l.FlockID, &l.TagID, &l.Species, &l.Breed, &l.Status,
			&l.PurchasePrice, &l.PurchaseDate, &l.SalePrice, &l.SaleDate,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan livestock: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza un animal. Status/SalePrice/SaleDate sí se escriben aquí,
// pero la transición a 'sold' de una venta va siempre por MarkSold dentro de la tx.
func (r *LivestockRepo) Update(animal *entity.Livestock) error {
	query := `
		UPDATE livestock SET flock_id = $2, tag_id = $3, species = $4, breed = $5, status = $6,
			purchase_price = $7, purchase_date = $8, sale_price = $9, sale_date = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		animal.ID, animal.FlockID, animal.TagID, animal.Species, animal.Breed, animal.Status,
		animal.PurchasePrice, animal.PurchaseDate, animal.SalePrice, animal.SaleDate, animal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update livestock: %w", err)
	}
	return nil
}

// Delete elimina un animal por ID.
func (r *LivestockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM livestock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete livestock: %w", err)
	}
	return nil
}

// MarkSold pasa el animal a sold fijando precio y fecha de venta.
func (r *LivestockRepo) MarkSold(id string, salePrice decimal.Decimal, saleDate time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE livestock SET status = 'sold', sale_price = $2, sale_date = $3, updated_at = now() WHERE id = $1`,
		id, salePrice, saleDate,
	)
	if err != nil {
		return fmt.Errorf("mark livestock sold: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RevertSale devuelve el animal a active y anula los datos de venta.
func (r *LivestockRepo) RevertSale(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE livestock SET status = 'active', sale_price = NULL, sale_date = NULL, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("revert livestock sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
