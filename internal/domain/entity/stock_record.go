package entity

import "time"

// DefaultReorderLevel es el umbral de reorden aplicado cuando el registro
// de stock se materializa sin un nivel explícito.
const DefaultReorderLevel int64 = 10

// StockRecord representa la cantidad actual de un producto en una sucursal.
// Hay a lo sumo una fila por par (producto, sucursal). Invariante: Quantity >= 0
// en todo momento; solo el motor de movimientos puede mutarla.
type StockRecord struct {
	ProductID    string
	BranchID     string
	Quantity     int64
	ReorderLevel int64
	UpdatedAt    time.Time
}
