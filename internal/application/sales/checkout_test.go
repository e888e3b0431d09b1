package sales_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	appinv "github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

const (
	productA = "prod-a"
	productB = "prod-b"
	branch1  = "branch-1"
	cashier  = "user-caja"
)

func newCheckoutFixture(t *testing.T) (*sales.CheckoutUseCase, *memState) {
	t.Helper()
	st := newMemState()
	engine := appinv.NewEngine(nil, nil)
	uc := sales.NewCheckoutUseCase(
		&memCheckoutRunner{st: st},
		engine,
		newFakeProductRepo(productA, productB),
		newFakeBranchRepo(branch1),
	)
	return uc, st
}

func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestCheckout_VentaMultiLinea(t *testing.T) {
	uc, st := newCheckoutFixture(t)
	st.seedStock(productA, branch1, 10, 2)
	st.seedStock(productB, branch1, 8, 2)

	resp, err := uc.Checkout(context.Background(), cashier, dto.CheckoutRequest{
		BranchID: branch1,
		Items: []dto.CheckoutItem{
			{ProductID: productA, Quantity: 3, UnitPrice: price(100)},
			{ProductID: productB, Quantity: 2, UnitPrice: price(50)},
		},
		Subtotal: price(400),
		Total:    price(400),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, strings.HasPrefix(resp.InvoiceNumber, "INV-"))

	// Cabecera y líneas persistidas
	sale := st.sales[resp.SaleID]
	require.NotNil(t, sale)
	assert.Equal(t, entity.SaleCompleted, sale.Status)
	assert.Equal(t, "Cash", sale.PaymentMethod)
	assert.Len(t, st.itemsOf(resp.SaleID), 2)

	// Stock decrementado y log con dos SALE referenciando la venta
	assert.Equal(t, int64(7), st.quantity(productA, branch1))
	assert.Equal(t, int64(6), st.quantity(productB, branch1))
	movs := st.movementsOfType(entity.MovementTypeSALE)
	require.Len(t, movs, 2)
	for _, m := range movs {
		require.NotNil(t, m.ReferenceID)
		assert.Equal(t, resp.SaleID, *m.ReferenceID)
		assert.Equal(t, cashier, m.CreatedBy)
		assert.Negative(t, m.Quantity)
	}
}

func TestCheckout_SubtotalDeLinea(t *testing.T) {
	uc, st := newCheckoutFixture(t)
	st.seedStock(productA, branch1, 10, 2)

	resp, err := uc.Checkout(context.Background(), cashier, dto.CheckoutRequest{
		BranchID: branch1,
		Items: []dto.CheckoutItem{
			{ProductID: productA, Quantity: 3, UnitPrice: price(100), Discount: price(20)},
		},
		Total: price(280),
	})
	require.NoError(t, err)

	items := st.itemsOf(resp.SaleID)
	require.Len(t, items, 1)
	// 3 * 100 - 20
	assert.True(t, items[0].Subtotal.Equal(price(280)),
		"subtotal %s", items[0].Subtotal)
}

func TestCheckout_StockInsuficienteDescartaTodo(t *testing.T) {
	uc, st := newCheckoutFixture(t)
	st.seedStock(productA, branch1, 10, 2)
	st.seedStock(productB, branch1, 1, 2)

	// La primera línea alcanza, la segunda no: nada debe persistir
	_, err := uc.Checkout(context.Background(), cashier, dto.CheckoutRequest{
		BranchID: branch1,
		Items: []dto.CheckoutItem{
			{ProductID: productA, Quantity: 3, UnitPrice: price(100)},
			{ProductID: productB, Quantity: 5, UnitPrice: price(50)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "producto "+productB)

	assert.Empty(t, st.sales)
	assert.Empty(t, st.items)
	assert.Equal(t, int64(10), st.quantity(productA, branch1))
	assert.Equal(t, int64(1), st.quantity(productB, branch1))
	assert.Empty(t, st.movements)
}

func TestCheckout_EntradaInvalida(t *testing.T) {
	uc, st := newCheckoutFixture(t)
	st.seedStock(productA, branch1, 10, 2)

	cases := []struct {
		name string
		req  dto.CheckoutRequest
		want error
	}{
		{"sin lineas", dto.CheckoutRequest{BranchID: branch1}, domain.ErrInvalidInput},
		{"cantidad cero", dto.CheckoutRequest{
			BranchID: branch1,
			Items:    []dto.CheckoutItem{{ProductID: productA, Quantity: 0}},
		}, domain.ErrInvalidInput},
		{"producto inexistente", dto.CheckoutRequest{
			BranchID: branch1,
			Items:    []dto.CheckoutItem{{ProductID: "prod-zzz", Quantity: 1}},
		}, domain.ErrNotFound},
		{"sucursal inexistente", dto.CheckoutRequest{
			BranchID: "branch-zzz",
			Items:    []dto.CheckoutItem{{ProductID: productA, Quantity: 1}},
		}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Checkout(context.Background(), cashier, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, st.sales)
}
