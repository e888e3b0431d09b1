package sales

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// TxRunner abre la transacción de una venta y pasa repositorios atados a ella:
// cabecera, líneas, stock y log de movimientos comparten la misma unidad de
// trabajo, de modo que una línea sin stock descarta la venta entera.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// ReceiptItem línea enriquecida para el recibo PDF.
type ReceiptItem struct {
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPDFGenerator renderiza el recibo de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, items []ReceiptItem, branch *entity.Branch, customer *entity.Customer) ([]byte, error)
}
