package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para dashboard y reportes. Solo suma
// ventas completadas: las devueltas no cuentan como ingreso.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador sobre el pool (las consultas
// corren en paralelo, así que no sirve un Querier de tx).
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) RevenueSince(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE status = 'completed'
		  AND ($1::timestamptz IS NULL OR sale_date >= $1)`
	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, since).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("revenue since: %w", err)
	}
	return revenue, nil
}

func (r *AnalyticsRepo) SalesCountSince(ctx context.Context, since *time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM sales
		WHERE status = 'completed'
		  AND ($1::timestamptz IS NULL OR sale_date >= $1)`
	var count int64
	if err := r.pool.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("sales count since: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) LowStockCount(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM stock_records s
		JOIN products p ON p.id = s.product_id
		WHERE s.quantity <= s.reorder_level AND p.status = 'active'`
	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("low stock count: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSale, error) {
	query := `
		SELECT s.id, s.invoice_number, u.name, s.total, s.sale_date
		FROM sales s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.sale_date DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentSale
	for rows.Next() {
		var s repository.RecentSale
		if err := rows.Scan(&s.ID, &s.InvoiceNumber, &s.CashierName, &s.Total, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) RevenueByDay(ctx context.Context, from, to time.Time) ([]repository.DailyRevenue, error) {
	query := `
		SELECT date_trunc('day', sale_date) AS day, COALESCE(SUM(total), 0)
		FROM sales
		WHERE status = 'completed'
		  AND sale_date >= $1 AND sale_date <= $2
		GROUP BY day
		ORDER BY day`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue by day: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyRevenue
	for rows.Next() {
		var d repository.DailyRevenue
		if err := rows.Scan(&d.Day, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) SalesReport(ctx context.Context, from, to time.Time) ([]repository.SalesReportRow, error) {
	query := `
		SELECT s.id, s.invoice_number, b.name, u.name, s.total, s.payment_method, s.status, s.sale_date
		FROM sales s
		JOIN branches b ON b.id = s.branch_id
		JOIN users u ON u.id = s.user_id
		WHERE s.sale_date >= $1 AND s.sale_date <= $2
		ORDER BY s.sale_date DESC`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	defer rows.Close()
	var list []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(
			&row.SaleID, &row.InvoiceNumber, &row.BranchName, &row.CashierName,
			&row.Total, &row.PaymentMethod, &row.Status, &row.SaleDate,
		); err != nil {
			return nil, fmt.Errorf("scan sales report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
