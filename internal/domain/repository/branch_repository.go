package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	List(limit, offset int) ([]*entity.Branch, error)
}
