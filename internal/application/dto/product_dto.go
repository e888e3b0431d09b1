package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. El registro de stock nace siempre
// en cero en BranchID; si InitialQuantity > 0 se registra además como
// movimiento PURCHASE.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	CategoryID      string          `json:"category_id"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	BranchID        string          `json:"branch_id"`        // sucursal donde nace el registro de stock
	InitialQuantity int64           `json:"initial_quantity"` // opcional
	ReorderLevel    *int64          `json:"reorder_level"`    // opcional, default 10
}

// UpdateProductRequest edición de producto (el stock se maneja vía movimientos).
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	CategoryID   *string          `json:"category_id"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Description  *string          `json:"description"`
	ImageURL     *string          `json:"image_url"`
	Status       *string          `json:"status"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ImageURL     string          `json:"image_url"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
