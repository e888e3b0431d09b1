package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Sale.
const (
	SaleCompleted = "completed"
	SaleRefunded  = "refunded"
)

// Sale representa la cabecera de una venta de mostrador.
type Sale struct {
	ID            string
	InvoiceNumber string
	BranchID      string
	UserID        string  // cajero
	CustomerID    *string // nil para venta anónima
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Status        string // completed, refunded
	SaleDate      time.Time
}

// SaleItem representa una línea de venta.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Subtotal  decimal.Decimal
}
