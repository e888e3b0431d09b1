package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appinv "github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

func seedSale(st *memState, id, status string, items ...*entity.SaleItem) {
	st.sales[id] = &entity.Sale{
		ID:            id,
		InvoiceNumber: "INV-1",
		BranchID:      branch1,
		UserID:        cashier,
		Status:        status,
		SaleDate:      time.Now(),
	}
	for _, it := range items {
		it.SaleID = id
		st.items = append(st.items, it)
	}
}

func newReturnFixture(t *testing.T) (*sales.ReturnSaleUseCase, *memState) {
	t.Helper()
	st := newMemState()
	engine := appinv.NewEngine(nil, nil)
	uc := sales.NewReturnSaleUseCase(&memCheckoutRunner{st: st}, engine, &memSaleRepo{st: st})
	return uc, st
}

func TestReturn_ReingresaStockYMarcaRefunded(t *testing.T) {
	uc, st := newReturnFixture(t)
	st.seedStock(productA, branch1, 7, 2)
	seedSale(st, "sale-1", entity.SaleCompleted,
		&entity.SaleItem{ID: "item-1", ProductID: productA, Quantity: 3},
	)

	resp, err := uc.Return(context.Background(), cashier, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SaleRefunded, resp.Status)

	assert.Equal(t, int64(10), st.quantity(productA, branch1))
	assert.Equal(t, entity.SaleRefunded, st.sales["sale-1"].Status)

	movs := st.movementsOfType(entity.MovementTypeRETURN)
	require.Len(t, movs, 1)
	require.NotNil(t, movs[0].ReferenceID)
	assert.Equal(t, "sale-1", *movs[0].ReferenceID)
	assert.Equal(t, int64(3), movs[0].Quantity)
}

func TestReturn_VentaYaDevuelta(t *testing.T) {
	uc, st := newReturnFixture(t)
	seedSale(st, "sale-1", entity.SaleRefunded)

	_, err := uc.Return(context.Background(), cashier, "sale-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReturn_VentaInexistente(t *testing.T) {
	uc, _ := newReturnFixture(t)

	_, err := uc.Return(context.Background(), cashier, "sale-zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
