package dto

import "time"

// AdjustStockRequest ajuste manual contra conteo físico.
type AdjustStockRequest struct {
	ProductID        string `json:"product_id"`
	BranchID         string `json:"branch_id"`
	PhysicalQuantity int64  `json:"physical_quantity"`
	Reason           string `json:"reason"`
}

// AdjustStockResponse resultado del ajuste (Delta 0 = sin cambios).
type AdjustStockResponse struct {
	ProductID   string `json:"product_id"`
	BranchID    string `json:"branch_id"`
	PreviousQty int64  `json:"previous_qty"`
	NewQty      int64  `json:"new_qty"`
	Delta       int64  `json:"delta"`
	Adjusted    bool   `json:"adjusted"`
}

// TransferItem línea de un traslado entre sucursales.
type TransferItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// TransferRequest traslado de stock entre dos sucursales.
type TransferRequest struct {
	FromBranchID string         `json:"from_branch_id"`
	ToBranchID   string         `json:"to_branch_id"`
	Items        []TransferItem `json:"items"`
}

// TransferResponse referencia del traslado aplicado.
type TransferResponse struct {
	TransferID string `json:"transfer_id"`
	Lines      int    `json:"lines"`
}

// StockRecordResponse stock actual de un par (producto, sucursal).
type StockRecordResponse struct {
	ProductID    string    `json:"product_id"`
	BranchID     string    `json:"branch_id"`
	Quantity     int64     `json:"quantity"`
	ReorderLevel int64     `json:"reorder_level"`
	LowStock     bool      `json:"low_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MovementResponse movimiento del log serializado.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	BranchID    string    `json:"branch_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	ReferenceID *string   `json:"reference_id,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementQuery filtros para el historial de movimientos.
type MovementQuery struct {
	ProductID string `query:"product_id"`
	BranchID  string `query:"branch_id"`
	From      string `query:"from"` // RFC3339 o 2006-01-02
	To        string `query:"to"`
	PageRequest
}

// ReorderLevelRequest edición del umbral de reorden de un par.
type ReorderLevelRequest struct {
	ProductID    string `json:"product_id"`
	BranchID     string `json:"branch_id"`
	ReorderLevel int64  `json:"reorder_level"`
}
