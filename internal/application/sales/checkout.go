package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	appinv "github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// CheckoutUseCase registra una venta de mostrador multi-línea: cabecera,
// líneas y decrementos de stock comprometen juntos o no comprometen nada.
type CheckoutUseCase struct {
	txRunner    TxRunner
	engine      *appinv.Engine
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	txRunner TxRunner,
	engine *appinv.Engine,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner, engine: engine, productRepo: productRepo, branchRepo: branchRepo}
}

// Checkout ejecuta la venta. El POS ya mostró stock al armar el carrito, pero
// esa lectura es solo orientativa: la verificación que cuenta es la que hace
// el motor dentro de esta transacción, con la fila bloqueada.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(in.Items) == 0 || in.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	// Nombres para reportar qué línea falló
	names := make(map[string]string, len(in.Items))
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		names[item.ProductID] = product.Name
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		BranchID:      in.BranchID,
		UserID:        userID,
		CustomerID:    in.CustomerID,
		Subtotal:      in.Subtotal,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Total:         in.Total,
		PaymentMethod: paymentMethod,
		Status:        entity.SaleCompleted,
		SaleDate:      now,
	}

	err = uc.txRunner.RunCheckout(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := saleRepo.CreateSale(sale); err != nil {
			return err
		}
		for _, item := range in.Items {
			lineSubtotal := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)).Sub(item.Discount)
			if err := saleRepo.CreateItem(&entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Discount:  item.Discount,
				Subtotal:  lineSubtotal,
			}); err != nil {
				return err
			}
			// Decremento y log en la misma transacción que la venta
			if _, err := uc.engine.Apply(ctx, stockRepo, movRepo, appinv.MovementInput{
				ProductID:   item.ProductID,
				BranchID:    in.BranchID,
				Delta:       -item.Quantity,
				Type:        entity.MovementTypeSALE,
				ActorID:     userID,
				ReferenceID: &sale.ID,
			}); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return fmt.Errorf("línea %q: %w", names[item.ProductID], err)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{SaleID: sale.ID, InvoiceNumber: sale.InvoiceNumber}, nil
}
