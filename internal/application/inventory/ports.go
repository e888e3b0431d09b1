package inventory

import (
	"context"

	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// si fn devuelve error, la cantidad y el log se descartan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// LowStockNotifier recibe el aviso de stock bajo tras una escritura exitosa.
// Es fire-and-forget: no devuelve error, por lo que nunca puede revertir
// el movimiento que lo disparó.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, record *entity.StockRecord)
}
