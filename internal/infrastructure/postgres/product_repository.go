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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Acepta pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto. SKU duplicado devuelve ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, category_id, cost_price, selling_price, image_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	categoryID := (*string)(nil)
	if product.CategoryID != "" {
		categoryID = &product.CategoryID
	}
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, categoryID,
		product.CostPrice, product.SellingPrice, product.ImageURL, product.Status,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, COALESCE(category_id, ''), cost_price, selling_price, image_url, status, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, COALESCE(category_id, ''), cost_price, selling_price, image_url, status, created_at, updated_at
		FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = NULLIF($4, ''), cost_price = $5,
		    selling_price = $6, image_url = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.CostPrice, product.SellingPrice, product.ImageURL, product.Status,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List busca por nombre o SKU (ILIKE) con paginación.
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, COALESCE(category_id, ''), cost_price, selling_price, image_url, status, created_at, updated_at
		FROM products
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID,
			&p.CostPrice, &p.SellingPrice, &p.ImageURL, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete borra el producto arrastrando su stock y sus movimientos.
func (r *ProductRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_movements WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete product movements: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_records WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete product stock: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// HasSales indica si existen líneas de venta que referencian al producto.
func (r *ProductRepo) HasSales(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM sale_items WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product sales: %w", err)
	}
	return exists, nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID,
		&p.CostPrice, &p.SellingPrice, &p.ImageURL, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
