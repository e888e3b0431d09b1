package sales_test

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// Dobles en memoria para el flujo de ventas. El runner toma un snapshot del
// estado completo (ventas, líneas, stock, log) antes de ejecutar fn y lo
// restaura si fn falla, imitando el commit/rollback de PostgreSQL.

func pairKey(productID, branchID string) string { return productID + "|" + branchID }

type memState struct {
	sales     map[string]*entity.Sale
	items     []*entity.SaleItem
	stocks    map[string]*entity.StockRecord
	movements []*entity.StockMovement
}

func newMemState() *memState {
	return &memState{
		sales:  make(map[string]*entity.Sale),
		stocks: make(map[string]*entity.StockRecord),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	c.items = make([]*entity.SaleItem, len(s.items))
	copy(c.items, s.items)
	for k, v := range s.stocks {
		cp := *v
		c.stocks[k] = &cp
	}
	c.movements = make([]*entity.StockMovement, len(s.movements))
	copy(c.movements, s.movements)
	return c
}

func (s *memState) restore(from *memState) {
	s.sales = from.sales
	s.items = from.items
	s.stocks = from.stocks
	s.movements = from.movements
}

func (s *memState) seedStock(productID, branchID string, qty, reorder int64) {
	s.stocks[pairKey(productID, branchID)] = &entity.StockRecord{
		ProductID:    productID,
		BranchID:     branchID,
		Quantity:     qty,
		ReorderLevel: reorder,
		UpdatedAt:    time.Now(),
	}
}

func (s *memState) quantity(productID, branchID string) int64 {
	if rec, ok := s.stocks[pairKey(productID, branchID)]; ok {
		return rec.Quantity
	}
	return 0
}

func (s *memState) itemsOf(saleID string) []*entity.SaleItem {
	var out []*entity.SaleItem
	for _, it := range s.items {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out
}

func (s *memState) movementsOfType(t string) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range s.movements {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// ── SaleRepository ────────────────────────────────────────────────────────────

type memSaleRepo struct{ st *memState }

var _ repository.SaleRepository = (*memSaleRepo)(nil)

func (r *memSaleRepo) CreateSale(sale *entity.Sale) error {
	cp := *sale
	r.st.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	cp := *item
	r.st.items = append(r.st.items, &cp)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	if sale, ok := r.st.sales[id]; ok {
		cp := *sale
		return &cp, nil
	}
	return nil, nil
}

func (r *memSaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	return r.st.itemsOf(saleID), nil
}

func (r *memSaleRepo) UpdateStatus(id, status string) error {
	if sale, ok := r.st.sales[id]; ok {
		sale.Status = status
	}
	return nil
}

// ── StockRepository / StockMovementRepository ─────────────────────────────────

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
		if m.ProductID == productID && m.BranchID == branchID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ── TxRunner de ventas con semántica commit/rollback ──────────────────────────

type memCheckoutRunner struct{ st *memState }

func (r *memCheckoutRunner) RunCheckout(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snapshot := r.st.clone()
	if err := fn(&memSaleRepo{st: r.st}, &memStockRepo{st: r.st}, &memMovementRepo{st: r.st}); err != nil {
		r.st.restore(snapshot)
		return err
	}
	return nil
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
func (r *fakeProductRepo) Delete(id string) error        { delete(r.products, id); return nil }
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
