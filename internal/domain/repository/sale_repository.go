package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(flockID, saleType string, limit, offset int) ([]*entity.Sale, error)
	Delete(id string) error
}
