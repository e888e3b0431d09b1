package repository

import (
	"time"

	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del log de movimientos.
// Solo inserta y lee: el log es append-only.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByBranch(branchID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByPair(productID, branchID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
