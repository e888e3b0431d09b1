package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
