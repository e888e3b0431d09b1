package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RecentSale fila resumida para el dashboard.
type RecentSale struct {
	ID            string
	InvoiceNumber string
	CashierName   string
	Total         decimal.Decimal
	SaleDate      time.Time
}

// SalesReportRow fila del reporte de ventas por rango de fechas.
type SalesReportRow struct {
	SaleID        string
	InvoiceNumber string
	BranchName    string
	CashierName   string
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
	SaleDate      time.Time
}

// DailyRevenue ingreso agregado de un día.
type DailyRevenue struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para dashboard y reportes.
// Lee ventas y stock pero nunca los muta.
type AnalyticsRepository interface {
	RevenueSince(ctx context.Context, since *time.Time) (decimal.Decimal, error)
	SalesCountSince(ctx context.Context, since *time.Time) (int64, error)
	LowStockCount(ctx context.Context) (int64, error)
	RecentSales(ctx context.Context, limit int) ([]RecentSale, error)
	SalesReport(ctx context.Context, from, to time.Time) ([]SalesReportRow, error)
	// RevenueByDay ingreso por día en [from, to]; los días sin ventas no
	// devuelven fila (el caso de uso rellena los ceros).
	RevenueByDay(ctx context.Context, from, to time.Time) ([]DailyRevenue, error)
}
