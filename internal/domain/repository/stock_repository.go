package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// LowStockItem fila de la consulta de stock bajo (join con productos).
type LowStockItem struct {
	ProductID    string
	SKU          string
	ProductName  string
	BranchID     string
	Quantity     int64
	ReorderLevel int64
}

// StockRepository define el puerto para consultar/actualizar stock por producto+sucursal.
// Las escrituras pasan siempre por el motor de movimientos dentro de una transacción.
type StockRepository interface {
	// Get devuelve el registro actual; si no existe, un registro con cantidad 0
	// (lectura consultiva, sin garantías frente a escritores concurrentes).
	Get(productID, branchID string) (*entity.StockRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y devuelve nil si no existe,
	// para que el motor pueda materializarla con el nivel de reorden correcto.
	GetForUpdate(productID, branchID string) (*entity.StockRecord, error)
	Upsert(record *entity.StockRecord) error
	UpdateReorderLevel(productID, branchID string, level int64) error

	ListByBranch(branchID string, limit, offset int) ([]*entity.StockRecord, error)
	ListByProduct(productID string) ([]*entity.StockRecord, error)
	// ListLowStock devuelve los productos con quantity <= reorder_level,
	// en la sucursal indicada o en todas si branchID es vacío.
	ListLowStock(branchID string) ([]LowStockItem, error)
}
