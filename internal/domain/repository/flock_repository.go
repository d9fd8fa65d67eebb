package repository

import "github.com/jhoicas/Granja-api/internal/domain/entity"

// FlockRepository puerto de persistencia para lotes.
type FlockRepository interface {
	Create(flock *entity.Flock) error
	GetByID(id string) (*entity.Flock, error)
	List(limit, offset int) ([]*entity.Flock, error)
	Update(flock *entity.Flock) error
	Delete(id string) error
}
