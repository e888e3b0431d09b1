package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
)

const (
	productA  = "11111111-1111-1111-1111-111111111111"
	productB  = "22222222-2222-2222-2222-222222222222"
	branch1   = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	branch2   = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	actorUser = "99999999-9999-9999-9999-999999999999"
)

func newEngineFixture() (*inventory.Engine, *memState, *recorderNotifier) {
	st := newMemState()
	notifier := &recorderNotifier{}
	engine := inventory.NewEngine(&memTxRunner{st: st}, notifier)
	return engine, st, notifier
}

func TestApply_VentaExitosa(t *testing.T) {
	engine, st, _ := newEngineFixture()
	st.seed(productA, branch1, 10, 2)
	ref := "venta-001"

	rec, err := engine.Apply(context.Background(), &memStockRepo{st: st}, &memMovementRepo{st: st}, inventory.MovementInput{
		ProductID:   productA,
		BranchID:    branch1,
		Delta:       -4,
		Type:        entity.MovementTypeSALE,
		ActorID:     actorUser,
		ReferenceID: &ref,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), rec.Quantity)
	assert.Equal(t, int64(6), st.quantity(productA, branch1))

	sales := st.movementsOfType(entity.MovementTypeSALE)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(-4), sales[0].Quantity)
	assert.Equal(t, actorUser, sales[0].CreatedBy)
	require.NotNil(t, sales[0].ReferenceID)
	assert.Equal(t, ref, *sales[0].ReferenceID)
}

func TestApply_StockInsuficiente(t *testing.T) {
	engine, st, _ := newEngineFixture()
	st.seed(productA, branch1, 3, 2)

	_, err := engine.Apply(context.Background(), &memStockRepo{st: st}, &memMovementRepo{st: st}, inventory.MovementInput{
		ProductID: productA,
		BranchID:  branch1,
		Delta:     -5,
		Type:      entity.MovementTypeSALE,
		ActorID:   actorUser,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada se escribió: ni cantidad ni movimiento
	assert.Equal(t, int64(3), st.quantity(productA, branch1))
	assert.Empty(t, st.movementsOfType(entity.MovementTypeSALE))
}

func TestApply_CreacionPerezosa(t *testing.T) {
	engine, st, _ := newEngineFixture()
	level := int64(5)

	rec, err := engine.Apply(context.Background(), &memStockRepo{st: st}, &memMovementRepo{st: st}, inventory.MovementInput{
		ProductID:    productA,
		BranchID:     branch1,
		Delta:        50,
		Type:         entity.MovementTypePURCHASE,
		ActorID:      actorUser,
		ReorderLevel: &level,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), rec.Quantity)
	assert.Equal(t, int64(5), rec.ReorderLevel)
}

func TestApply_CreacionPerezosa_NivelPorDefecto(t *testing.T) {
	engine, st, _ := newEngineFixture()

	rec, err := engine.Apply(context.Background(), &memStockRepo{st: st}, &memMovementRepo{st: st}, inventory.MovementInput{
		ProductID: productA,
		BranchID:  branch1,
		Delta:     20,
		Type:      entity.MovementTypePURCHASE,
		ActorID:   actorUser,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultReorderLevel, rec.ReorderLevel)
}

func TestApply_DeltaNegativoSinRegistro(t *testing.T) {
	engine, st, _ := newEngineFixture()

	_, err := engine.Apply(context.Background(), &memStockRepo{st: st}, &memMovementRepo{st: st}, inventory.MovementInput{
		ProductID: productA,
		BranchID:  branch1,
		Delta:     -1,
		Type:      entity.MovementTypeSALE,
		ActorID:   actorUser,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, st.stocks)
}

func TestApply_EntradaInvalida(t *testing.T) {
	engine, st, _ := newEngineFixture()
	st.seed(productA, branch1, 10, 2)

	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"delta cero", inventory.MovementInput{ProductID: productA, BranchID: branch1, Delta: 0, Type: entity.MovementTypeSALE, ActorID: actorUser}},
		{"tipo desconocido", inventory.MovementInput{ProductID: productA, BranchID: branch1, Delta: 1, Type: "REGALO", ActorID: actorUser}},
		{"sin producto", inventory.MovementInput{BranchID: branch1, Delta: 1, Type: entity.MovementTypePURCHASE, ActorID: actorUser}},
		{"sin actor", inventory.MovementInput{ProductID: productA, BranchID: branch1, Delta: 1, Type: entity.MovementTypePURCHASE}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Apply(context.Background(), &memStockRepo{st: st}, &memMovementRepo{st: st}, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, int64(10), st.quantity(productA, branch1))
}

func TestApply_ConsistenciaDelLedger(t *testing.T) {
	engine, st, _ := newEngineFixture()
	ctx := context.Background()
	stockRepo := &memStockRepo{st: st}
	movRepo := &memMovementRepo{st: st}

	deltas := []struct {
		delta int64
		typ   string
	}{
		{100, entity.MovementTypePURCHASE},
		{-30, entity.MovementTypeSALE},
		{-15, entity.MovementTypeSALE},
		{8, entity.MovementTypeRETURN},
		{-3, entity.MovementTypeADJUSTMENT},
	}
	for _, d := range deltas {
		_, err := engine.Apply(ctx, stockRepo, movRepo, inventory.MovementInput{
			ProductID: productA,
			BranchID:  branch1,
			Delta:     d.delta,
			Type:      d.typ,
			ActorID:   actorUser,
		})
		require.NoError(t, err)
		// En cada punto, la suma de deltas del log reconstruye la cantidad
		assert.Equal(t, st.quantity(productA, branch1), st.sumDeltas(productA, branch1))
	}
	assert.Equal(t, int64(60), st.quantity(productA, branch1))
}

func TestApply_AvisoStockBajo(t *testing.T) {
	cases := []struct {
		name       string
		initial    int64
		delta      int64
		wantNotify bool
	}{
		{"queda bajo el umbral", 6, -2, true},
		{"queda exactamente en el umbral", 7, -2, true}, // <= es inclusivo
		{"queda sobre el umbral", 8, -2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, st, notifier := newEngineFixture()
			st.seed(productA, branch1, tc.initial, 5)

			_, err := engine.Apply(context.Background(), &memStockRepo{st: st}, &memMovementRepo{st: st}, inventory.MovementInput{
				ProductID: productA,
				BranchID:  branch1,
				Delta:     tc.delta,
				Type:      entity.MovementTypeSALE,
				ActorID:   actorUser,
			})
			require.NoError(t, err)
			if tc.wantNotify {
				require.Len(t, notifier.notified, 1)
				assert.Equal(t, tc.initial+tc.delta, notifier.notified[0].Quantity)
			} else {
				assert.Empty(t, notifier.notified)
			}
		})
	}
}

func TestApplyStandalone_AbreSuPropiaTransaccion(t *testing.T) {
	engine, st, _ := newEngineFixture()
	st.seed(productA, branch1, 10, 2)

	rec, err := engine.ApplyStandalone(context.Background(), inventory.MovementInput{
		ProductID: productA,
		BranchID:  branch1,
		Delta:     -3,
		Type:      entity.MovementTypeSALE,
		ActorID:   actorUser,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.Quantity)
	assert.Equal(t, int64(7), st.quantity(productA, branch1))

	// Con fallo, el snapshot se restaura entero
	_, err = engine.ApplyStandalone(context.Background(), inventory.MovementInput{
		ProductID: productA,
		BranchID:  branch1,
		Delta:     -100,
		Type:      entity.MovementTypeSALE,
		ActorID:   actorUser,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(7), st.quantity(productA, branch1))
}
