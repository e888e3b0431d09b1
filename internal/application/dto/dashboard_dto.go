package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentSaleDTO venta reciente para el dashboard.
type RecentSaleDTO struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice"`
	Cashier       string          `json:"cashier"`
	Total         decimal.Decimal `json:"total"`
	Date          time.Time       `json:"date"`
}

// DashboardStatsResponse métricas agregadas del negocio.
type DashboardStatsResponse struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
	MonthRevenue  decimal.Decimal `json:"month_revenue"`
	TotalSales    int64           `json:"total_sales"`
	TodaySales    int64           `json:"today_sales"`
	LowStockCount int64           `json:"low_stock_count"`
	RecentSales   []RecentSaleDTO `json:"recent_sales"`
}

// SalesReportRowDTO fila del reporte de ventas.
type SalesReportRowDTO struct {
	SaleID        string          `json:"sale_id"`
	InvoiceNumber string          `json:"invoice"`
	Branch        string          `json:"branch"`
	Cashier       string          `json:"cashier"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
}

// RevenuePointDTO punto de la serie de ingresos diarios.
type RevenuePointDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
}
