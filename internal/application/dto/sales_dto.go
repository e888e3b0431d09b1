package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItem línea del carrito.
type CheckoutItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

// CheckoutRequest venta de mostrador multi-línea.
// Los totales vienen precalculados por el POS; el stock se re-verifica
// dentro de la transacción, que es la comprobación que vale.
type CheckoutRequest struct {
	BranchID      string          `json:"branch_id"`
	CustomerID    *string         `json:"customer_id"`
	Items         []CheckoutItem  `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
}

// CheckoutResponse venta registrada.
type CheckoutResponse struct {
	SaleID        string `json:"sale_id"`
	InvoiceNumber string `json:"invoice_number"`
}

// SaleItemResponse línea de venta serializada.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	BranchID      string             `json:"branch_id"`
	UserID        string             `json:"user_id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	SaleDate      time.Time          `json:"sale_date"`
	Items         []SaleItemResponse `json:"items"`
}
