package inventory_test

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los casos de uso de inventario.
//
// memTxRunner simula la atomicidad real: toma un snapshot del estado antes de
// ejecutar fn y lo restaura si fn falla, de modo que los tests de rollback
// observan lo mismo que verían contra PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

func pairKey(productID, branchID string) string { return productID + "|" + branchID }

type memState struct {
	stocks    map[string]*entity.StockRecord
	movements []*entity.StockMovement
}

func newMemState() *memState {
	return &memState{stocks: make(map[string]*entity.StockRecord)}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.stocks {
		rec := *v
		c.stocks[k] = &rec
	}
	c.movements = make([]*entity.StockMovement, len(s.movements))
	copy(c.movements, s.movements)
	return c
}

func (s *memState) restore(from *memState) {
	s.stocks = from.stocks
	s.movements = from.movements
}

// sumDeltas suma los deltas del log para un par (el log reconstruye el stock).
func (s *memState) sumDeltas(productID, branchID string) int64 {
	var sum int64
	for _, m := range s.movements {
		if m.ProductID == productID && m.BranchID == branchID {
			sum += m.Quantity
		}
	}
	return sum
}

func (s *memState) quantity(productID, branchID string) int64 {
	if rec, ok := s.stocks[pairKey(productID, branchID)]; ok {
		return rec.Quantity
	}
	return 0
}

func (s *memState) seed(productID, branchID string, qty, reorder int64) {
	s.stocks[pairKey(productID, branchID)] = &entity.StockRecord{
		ProductID:    productID,
		BranchID:     branchID,
		Quantity:     qty,
		ReorderLevel: reorder,
		UpdatedAt:    time.Now(),
	}
	if qty != 0 {
		s.movements = append(s.movements, &entity.StockMovement{
			ID:        "seed-" + pairKey(productID, branchID),
			ProductID: productID,
			BranchID:  branchID,
			Type:      entity.MovementTypePURCHASE,
			Quantity:  qty,
			CreatedBy: "seed",
			CreatedAt: time.Now(),
		})
	}
}

// ── StockRepository ───────────────────────────────────────────────────────────

type memStockRepo struct{ st *memState }

var _ repository.StockRepository = (*memStockRepo)(nil)

func (r *memStockRepo) Get(productID, branchID string) (*entity.StockRecord, error) {
	if rec, ok := r.st.stocks[pairKey(productID, branchID)]; ok {
		cp := *rec
		return &cp, nil
	}
	return &entity.StockRecord{ProductID: productID, BranchID: branchID}, nil
}

func (r *memStockRepo) GetForUpdate(productID, branchID string) (*entity.StockRecord, error) {
	if rec, ok := r.st.stocks[pairKey(productID, branchID)]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (r *memStockRepo) Upsert(record *entity.StockRecord) error {
	cp := *record
	r.st.stocks[pairKey(record.ProductID, record.BranchID)] = &cp
	return nil
}

func (r *memStockRepo) UpdateReorderLevel(productID, branchID string, level int64) error {
	if rec, ok := r.st.stocks[pairKey(productID, branchID)]; ok {
		rec.ReorderLevel = level
	}
	return nil
}

func (r *memStockRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	for _, rec := range r.st.stocks {
		if rec.BranchID == branchID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListByProduct(productID string) ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	for _, rec := range r.st.stocks {
		if rec.ProductID == productID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListLowStock(branchID string) ([]repository.LowStockItem, error) {
	var out []repository.LowStockItem
	for _, rec := range r.st.stocks {
		if branchID != "" && rec.BranchID != branchID {
			continue
		}
		if rec.Quantity <= rec.ReorderLevel {
			out = append(out, repository.LowStockItem{
				ProductID:    rec.ProductID,
				BranchID:     rec.BranchID,
				Quantity:     rec.Quantity,
				ReorderLevel: rec.ReorderLevel,
			})
		}
	}
	return out, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type memMovementRepo struct{ st *memState }

var _ repository.StockMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.st.movements = append(r.st.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.st.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByBranch(branchID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.st.movements {
		if m.BranchID == branchID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByPair(productID, branchID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.st.movements {
		if m.ProductID != productID || m.BranchID != branchID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// movementsOfType filtra los movimientos no sembrados por tipo.
func (s *memState) movementsOfType(t string) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range s.movements {
		if m.Type == t && m.CreatedBy != "seed" {
			out = append(out, m)
		}
	}
	return out
}

// ── TxRunner con semántica commit/rollback ────────────────────────────────────

type memTxRunner struct{ st *memState }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snapshot := r.st.clone()
	if err := fn(&memStockRepo{st: r.st}, &memMovementRepo{st: r.st}); err != nil {
		r.st.restore(snapshot)
		return err
	}
	return nil
}

// ── LowStockNotifier que registra avisos ──────────────────────────────────────

type recorderNotifier struct {
	notified []*entity.StockRecord
}

func (n *recorderNotifier) NotifyLowStock(_ context.Context, record *entity.StockRecord) {
	cp := *record
	n.notified = append(n.notified, &cp)
}

// ── ProductRepository / BranchRepository mínimos ──────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(ids ...string) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, id := range ids {
		r.products[id] = &entity.Product{ID: id, Name: "producto " + id, Status: entity.ProductActive}
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }
func (r *fakeProductRepo) HasSales(string) (bool, error) { return false, nil }

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

var _ repository.BranchRepository = (*fakeBranchRepo)(nil)

func newFakeBranchRepo(ids ...string) *fakeBranchRepo {
	r := &fakeBranchRepo{branches: make(map[string]*entity.Branch)}
	for _, id := range ids {
		r.branches[id] = &entity.Branch{ID: id, Name: "sucursal " + id}
	}
	return r
}

func (r *fakeBranchRepo) Create(b *entity.Branch) error { r.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return r.branches[id], nil
}
func (r *fakeBranchRepo) Update(b *entity.Branch) error { r.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) List(limit, offset int) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range r.branches {
		out = append(out, b)
	}
	return out, nil
}
