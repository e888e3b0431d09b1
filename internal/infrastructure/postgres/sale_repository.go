package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL. Dentro del
// checkout se usa atado a la tx del runner.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateSale persiste la cabecera de la venta.
func (r *SaleRepo) CreateSale(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, invoice_number, branch_id, user_id, customer_id, subtotal, tax, discount, total, payment_method, status, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.InvoiceNumber, sale.BranchID, sale.UserID, sale.CustomerID,
		sale.Subtotal, sale.Tax, sale.Discount, sale.Total,
		sale.PaymentMethod, sale.Status, sale.SaleDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, discount, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity,
		item.UnitPrice, item.Discount, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("create sale item: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, invoice_number, branch_id, user_id, customer_id, subtotal, tax, discount, total, payment_method, status, sale_date
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.InvoiceNumber, &s.BranchID, &s.UserID, &s.CustomerID,
		&s.Subtotal, &s.Tax, &s.Discount, &s.Total,
		&s.PaymentMethod, &s.Status, &s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

func (r *SaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, discount, subtotal
		FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Discount, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *SaleRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	return nil
}
