package inventory

import (
	"context"

	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// AdjustStockUseCase reconcilia el stock registrado con un conteo físico.
type AdjustStockUseCase struct {
	txRunner    TxRunner
	engine      *Engine
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(
	txRunner TxRunner,
	engine *Engine,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, engine: engine, productRepo: productRepo, branchRepo: branchRepo}
}

// Adjust calcula delta = conteo físico − cantidad registrada y lo aplica como
// ADJUSTMENT. Delta cero es un resultado legítimo: no se escribe nada y no se
// anota movimiento. El delta se calcula sobre la fila ya bloqueada, dentro de
// la misma transacción que lo aplica.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, actorID string, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if in.ProductID == "" || in.BranchID == "" || in.PhysicalQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	// Un ajuste contra un producto o sucursal inexistente es error del caller
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	var result dto.AdjustStockResponse
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		current, err := stockRepo.GetForUpdate(in.ProductID, in.BranchID)
		if err != nil {
			return err
		}
		var currentQty int64
		if current != nil {
			currentQty = current.Quantity
		}

		delta := in.PhysicalQuantity - currentQty
		result = dto.AdjustStockResponse{
			ProductID:   in.ProductID,
			BranchID:    in.BranchID,
			PreviousQty: currentQty,
			NewQty:      in.PhysicalQuantity,
			Delta:       delta,
		}
		if delta == 0 {
			// Las cantidades coinciden: no hay nada que ajustar
			return nil
		}

		_, err = uc.engine.Apply(ctx, stockRepo, movRepo, MovementInput{
			ProductID: in.ProductID,
			BranchID:  in.BranchID,
			Delta:     delta,
			Type:      entity.MovementTypeADJUSTMENT,
			ActorID:   actorID,
		})
		if err != nil {
			return err
		}
		result.Adjusted = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
