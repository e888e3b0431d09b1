package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/pos-pro/internal/domain/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// Engine es el único escritor de stock y del log de movimientos: todo cambio
// de cantidad entra por Apply, que actualiza el registro y anota el movimiento
// en la misma unidad de trabajo del llamador.
type Engine struct {
	txRunner TxRunner
	notifier LowStockNotifier
}

// NewEngine construye el motor. notifier puede ser nil (sin avisos de stock bajo).
func NewEngine(txRunner TxRunner, notifier LowStockNotifier) *Engine {
	return &Engine{txRunner: txRunner, notifier: notifier}
}

// MovementInput entrada para aplicar exactamente un delta firmado sobre un
// par (producto, sucursal).
type MovementInput struct {
	ProductID   string
	BranchID    string
	Delta       int64  // nunca cero; negativo salida, positivo entrada
	Type        string // SALE, PURCHASE, ADJUSTMENT, TRANSFER_IN, TRANSFER_OUT, RETURN
	ActorID     string // usuario autenticado que origina el cambio
	ReferenceID *string
	// ReorderLevel nivel inicial si la fila no existe todavía (default 10).
	ReorderLevel *int64
}

// Apply aplica el delta con los repositorios atados a la transacción del
// llamador: bloquea la fila (SELECT FOR UPDATE), valida no-negatividad,
// persiste la nueva cantidad y anota el movimiento. Si la cantidad resultante
// queda en o bajo el nivel de reorden, dispara el aviso de stock bajo.
//
// El motor no abre transacción propia: participa en la del llamador, de modo
// que un fallo posterior en la misma unidad de trabajo revierte cantidad y
// log a la vez.
func (e *Engine) Apply(
	ctx context.Context,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	in MovementInput,
) (*entity.StockRecord, error) {
	if in.ProductID == "" || in.BranchID == "" || in.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Delta == 0 || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()

	// Bloquea la fila del par para serializar lectores-escritores concurrentes
	stock, err := stockRepo.GetForUpdate(in.ProductID, in.BranchID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		// Un delta negativo contra un par inexistente nunca puede satisfacerse
		if in.Delta < 0 {
			return nil, fmt.Errorf("producto %s en sucursal %s sin stock: %w",
				in.ProductID, in.BranchID, domain.ErrInsufficientStock)
		}
		level := entity.DefaultReorderLevel
		if in.ReorderLevel != nil {
			level = *in.ReorderLevel
		}
		stock = &entity.StockRecord{
			ProductID:    in.ProductID,
			BranchID:     in.BranchID,
			Quantity:     0,
			ReorderLevel: level,
		}
	}

	newQty := stock.Quantity + in.Delta
	if newQty < 0 {
		// Única regla de negocio que rechaza un movimiento; no se escribe nada
		return nil, fmt.Errorf("producto %s en sucursal %s: disponible %d, solicitado %d: %w",
			in.ProductID, in.BranchID, stock.Quantity, -in.Delta, domain.ErrInsufficientStock)
	}

	stock.Quantity = newQty
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return nil, err
	}

	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		BranchID:    in.BranchID,
		Type:        in.Type,
		Quantity:    in.Delta,
		ReferenceID: in.ReferenceID,
		CreatedBy:   in.ActorID,
		CreatedAt:   now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}

	if e.notifier != nil && domaininv.IsLowStock(stock) {
		e.notifier.NotifyLowStock(ctx, stock)
	}

	return stock, nil
}

// ApplyStandalone abre su propia transacción para una llamada suelta
// (p. ej. un ajuste aislado). No usarlo desde call sites multi-paso: esos
// abren su transacción y pasan los repos a Apply directamente.
func (e *Engine) ApplyStandalone(ctx context.Context, in MovementInput) (*entity.StockRecord, error) {
	var result *entity.StockRecord
	err := e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		var err error
		result, err = e.Apply(ctx, stockRepo, movRepo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
