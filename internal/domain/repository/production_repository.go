package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// ProductionRecordRepository puerto de persistencia para registros de producción.
type ProductionRecordRepository interface {
	Create(record *entity.ProductionRecord) error
	GetByID(id string) (*entity.ProductionRecord, error)
	List(flockID, productType string, limit, offset int) ([]*entity.ProductionRecord, error)
	Delete(id string) error
}
