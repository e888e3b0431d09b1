package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

func seedMovementAt(st *memState, id, productID, branchID string, qty int64, at time.Time) {
	st.movements = append(st.movements, &entity.StockMovement{
		ID:        id,
		ProductID: productID,
		BranchID:  branchID,
		Type:      entity.MovementTypePURCHASE,
		Quantity:  qty,
		CreatedBy: "user-admin",
		CreatedAt: at,
	})
}

func TestListMovements_ParConRangoDeFechas(t *testing.T) {
	st := newMemState()
	uc := inventory.NewStockQueryUseCase(&memStockRepo{st: st}, &memMovementRepo{st: st})

	day := func(d string) time.Time {
		ts, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		return ts
	}
	seedMovementAt(st, "m-ene", "prod-1", "branch-1", 5, day("2026-01-15"))
	seedMovementAt(st, "m-feb", "prod-1", "branch-1", 3, day("2026-02-15"))
	seedMovementAt(st, "m-mar", "prod-1", "branch-1", -2, day("2026-03-15"))
	// Mismo producto en otra sucursal, dentro del rango: no debe aparecer
	seedMovementAt(st, "m-otra", "prod-1", "branch-2", 4, day("2026-02-20"))

	out, err := uc.ListMovements(dto.MovementQuery{
		ProductID: "prod-1",
		BranchID:  "branch-1",
		From:      "2026-02-01",
		To:        "2026-02-28",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m-feb", out[0].ID)

	// Solo límite inferior
	out, err = uc.ListMovements(dto.MovementQuery{
		ProductID: "prod-1",
		BranchID:  "branch-1",
		From:      "2026-02-01",
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// Sin fechas devuelve el historial completo del par
	out, err = uc.ListMovements(dto.MovementQuery{ProductID: "prod-1", BranchID: "branch-1"})
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestListMovements_FechaInvalida(t *testing.T) {
	st := newMemState()
	uc := inventory.NewStockQueryUseCase(&memStockRepo{st: st}, &memMovementRepo{st: st})

	_, err := uc.ListMovements(dto.MovementQuery{
		ProductID: "prod-1",
		BranchID:  "branch-1",
		From:      "15/01/2026",
	})
	assert.Error(t, err)
}
