package inventory

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// IsLowStock indica si el registro está en o por debajo de su nivel de reorden.
// Es un predicado puro sobre los datos actuales: los dashboards lo recalculan
// directamente en lugar de depender de una bandera cacheada.
func IsLowStock(record *entity.StockRecord) bool {
	if record == nil {
		return false
	}
	return record.Quantity <= record.ReorderLevel
}
