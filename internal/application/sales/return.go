package sales

import (
	"context"

	"github.com/tu-usuario/pos-pro/internal/application/dto"
	appinv "github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// ReturnSaleUseCase devuelve una venta completa: reingresa el stock de cada
// línea como RETURN y marca la venta como refunded, todo en una transacción.
type ReturnSaleUseCase struct {
	txRunner TxRunner
	engine   *appinv.Engine
	saleRepo repository.SaleRepository
}

// NewReturnSaleUseCase construye el caso de uso.
func NewReturnSaleUseCase(txRunner TxRunner, engine *appinv.Engine, saleRepo repository.SaleRepository) *ReturnSaleUseCase {
	return &ReturnSaleUseCase{txRunner: txRunner, engine: engine, saleRepo: saleRepo}
}

// Return procesa la devolución. Solo ventas en estado completed pueden devolverse.
func (uc *ReturnSaleUseCase) Return(ctx context.Context, actorID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Status != entity.SaleCompleted {
		return nil, domain.ErrConflict
	}
	items, err := uc.saleRepo.ListItems(saleID)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunCheckout(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		for _, item := range items {
			if _, err := uc.engine.Apply(ctx, stockRepo, movRepo, appinv.MovementInput{
				ProductID:   item.ProductID,
				BranchID:    sale.BranchID,
				Delta:       item.Quantity,
				Type:        entity.MovementTypeRETURN,
				ActorID:     actorID,
				ReferenceID: &sale.ID,
			}); err != nil {
				return err
			}
		}
		return saleRepo.UpdateStatus(sale.ID, entity.SaleRefunded)
	})
	if err != nil {
		return nil, err
	}

	sale.Status = entity.SaleRefunded
	resp := toSaleResponse(sale, items)
	return &resp, nil
}
