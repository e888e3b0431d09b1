package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// TransferUseCase traslada stock de una sucursal a otra, con una o más líneas
// por solicitud, de forma atómica.
type TransferUseCase struct {
	txRunner    TxRunner
	engine      *Engine
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	engine *Engine,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, engine: engine, productRepo: productRepo, branchRepo: branchRepo}
}

// Transfer aplica TRANSFER_OUT en origen y TRANSFER_IN en destino por cada
// línea, todo en una transacción. Acuña un transfer id único que viaja como
// ReferenceID en ambas patas para poder reconstruir pares desde el log.
// Si la pata de salida falla por stock insuficiente, se aborta antes de
// intentar la de entrada y antes de las líneas restantes.
func (uc *TransferUseCase) Transfer(ctx context.Context, actorID string, in dto.TransferRequest) (*dto.TransferResponse, error) {
	if in.FromBranchID == "" || in.ToBranchID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.FromBranchID == in.ToBranchID {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	from, err := uc.branchRepo.GetByID(in.FromBranchID)
	if err != nil {
		return nil, err
	}
	to, err := uc.branchRepo.GetByID(in.ToBranchID)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, domain.ErrNotFound
	}
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	transferID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		for _, item := range in.Items {
			// Salida en origen primero: si no alcanza, nada se escribe
			if _, err := uc.engine.Apply(ctx, stockRepo, movRepo, MovementInput{
				ProductID:   item.ProductID,
				BranchID:    in.FromBranchID,
				Delta:       -item.Quantity,
				Type:        entity.MovementTypeTRANSFEROUT,
				ActorID:     actorID,
				ReferenceID: &transferID,
			}); err != nil {
				return err
			}
			if _, err := uc.engine.Apply(ctx, stockRepo, movRepo, MovementInput{
				ProductID:   item.ProductID,
				BranchID:    in.ToBranchID,
				Delta:       item.Quantity,
				Type:        entity.MovementTypeTRANSFERIN,
				ActorID:     actorID,
				ReferenceID: &transferID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.TransferResponse{TransferID: transferID, Lines: len(in.Items)}, nil
}
