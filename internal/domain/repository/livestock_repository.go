package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// LivestockRepository puerto de persistencia para animales.
type LivestockRepository interface {
	Create(animal *entity.Livestock) error
	GetByID(id string) (*entity.Livestock, error)
	GetByTagID(tagID string) (*entity.Livestock, error)
	List(flockID, status string, limit, offset int) ([]*entity.Livestock, error)
	Update(animal *entity.Livestock) error
	Delete(id string) error

	// MarkSold pasa el animal a status='sold' fijando precio y fecha de venta.
	// Solo debe ejecutarse dentro de la transacción que inserta la venta.
	MarkSold(id string, salePrice decimal.Decimal, saleDate time.Time) error

	// RevertSale devuelve el animal a status='active' y anula sale_price/sale_date.
	// Acción compensatoria de la eliminación de una venta de tipo animal.
	RevertSale(id string) error
}
