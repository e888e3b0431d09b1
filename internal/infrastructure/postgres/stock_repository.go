package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get lectura consultiva: sin fila devuelve cantidad 0 con el nivel por defecto.
func (r *StockRepo) Get(productID, branchID string) (*entity.StockRecord, error) {
	query := `
		SELECT product_id, branch_id, quantity, reorder_level, updated_at
		FROM stock_records
		WHERE product_id = $1 AND branch_id = $2`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, productID, branchID).Scan(
		&s.ProductID, &s.BranchID, &s.Quantity, &s.ReorderLevel, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockRecord{
				ProductID:    productID,
				BranchID:     branchID,
				ReorderLevel: entity.DefaultReorderLevel,
			}, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &s, nil
}

// GetForUpdate bloquea la fila del par; devuelve nil si no existe para que el
// motor la materialice.
func (r *StockRepo) GetForUpdate(productID, branchID string) (*entity.StockRecord, error) {
	query := `
		SELECT product_id, branch_id, quantity, reorder_level, updated_at
		FROM stock_records
		WHERE product_id = $1 AND branch_id = $2
		FOR UPDATE`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, productID, branchID).Scan(
		&s.ProductID, &s.BranchID, &s.Quantity, &s.ReorderLevel, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record for update: %w", err)
	}
	return &s, nil
}

// Upsert escribe cantidad y nivel de reorden. En conflicto no pisa el nivel:
// ese solo cambia vía UpdateReorderLevel o al materializar la fila.
func (r *StockRepo) Upsert(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (product_id, branch_id, quantity, reorder_level, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, branch_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		record.ProductID, record.BranchID, record.Quantity, record.ReorderLevel,
	)
	if err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

func (r *StockRepo) UpdateReorderLevel(productID, branchID string, level int64) error {
	query := `
		UPDATE stock_records SET reorder_level = $3, updated_at = now()
		WHERE product_id = $1 AND branch_id = $2`
	tag, err := r.q.Exec(context.Background(), query, productID, branchID, level)
	if err != nil {
		return fmt.Errorf("update reorder level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Par sin fila todavía: materializar en 0 con el nivel pedido
		insert := `
			INSERT INTO stock_records (product_id, branch_id, quantity, reorder_level, updated_at)
			VALUES ($1, $2, 0, $3, now())
			ON CONFLICT (product_id, branch_id) DO UPDATE SET reorder_level = EXCLUDED.reorder_level`
		if _, err := r.q.Exec(context.Background(), insert, productID, branchID, level); err != nil {
			return fmt.Errorf("insert reorder level: %w", err)
		}
	}
	return nil
}

func (r *StockRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.StockRecord, error) {
	query := `
		SELECT product_id, branch_id, quantity, reorder_level, updated_at
		FROM stock_records
		WHERE branch_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock by branch: %w", err)
	}
	defer rows.Close()
	return scanStockRecords(rows)
}

func (r *StockRepo) ListByProduct(productID string) ([]*entity.StockRecord, error) {
	query := `
		SELECT product_id, branch_id, quantity, reorder_level, updated_at
		FROM stock_records
		WHERE product_id = $1
		ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	return scanStockRecords(rows)
}

// ListLowStock devuelve los pares con quantity <= reorder_level, con datos del
// producto para el panel. Ordena por déficit descendente (mayor quiebre primero).
func (r *StockRepo) ListLowStock(branchID string) ([]repository.LowStockItem, error) {
	query := `
		SELECT s.product_id, p.sku, p.name, s.branch_id, s.quantity, s.reorder_level
		FROM stock_records s
		JOIN products p ON p.id = s.product_id
		WHERE s.quantity <= s.reorder_level
		  AND ($1 = '' OR s.branch_id = $1)
		  AND p.status = 'active'
		ORDER BY (s.reorder_level - s.quantity) DESC`
	rows, err := r.q.Query(context.Background(), query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(
			&item.ProductID, &item.SKU, &item.ProductName,
			&item.BranchID, &item.Quantity, &item.ReorderLevel,
		); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanStockRecords(rows pgx.Rows) ([]*entity.StockRecord, error) {
	var list []*entity.StockRecord
	for rows.Next() {
		var s entity.StockRecord
		if err := rows.Scan(&s.ProductID, &s.BranchID, &s.Quantity, &s.ReorderLevel, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
