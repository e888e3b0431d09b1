package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product representa un producto o SKU del catálogo. El stock no vive aquí:
// se maneja por sucursal en StockRecord y se modifica solo vía movimientos.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Description  string
	CategoryID   string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	ImageURL     string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
