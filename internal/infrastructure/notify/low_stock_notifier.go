// Package notify implementa los avisos operativos de la aplicación.
package notify

import (
	"context"

	"github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/pkg/logger"
)

var _ inventory.LowStockNotifier = (*LowStockLogNotifier)(nil)

// LowStockLogNotifier emite el aviso de stock bajo como warning estructurado.
// Es fire-and-forget: un fallo del aviso nunca afecta al movimiento que lo
// disparó.
type LowStockLogNotifier struct {
	log *logger.Logger
}

// NewLowStockLogNotifier construye el notificador.
func NewLowStockLogNotifier(log *logger.Logger) *LowStockLogNotifier {
	return &LowStockLogNotifier{log: log}
}

// NotifyLowStock registra el par que quedó en o bajo su nivel de reorden.
func (n *LowStockLogNotifier) NotifyLowStock(_ context.Context, record *entity.StockRecord) {
	n.log.Warn().
		Str("product_id", record.ProductID).
		Str("branch_id", record.BranchID).
		Int64("quantity", record.Quantity).
		Int64("reorder_level", record.ReorderLevel).
		Msg("stock bajo")
}
