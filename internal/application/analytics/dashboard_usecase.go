// Package analytics contiene los casos de uso de solo lectura para el
// dashboard del negocio y el reporte de ventas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

const dashboardRecentSales = 5 // ventas recientes en el widget del dashboard

// DashboardUseCase genera las métricas agregadas del negocio.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas de ventas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye las métricas del dashboard: ingreso histórico, de hoy y
// del mes, conteos de ventas, pares en stock bajo y las últimas ventas.
//
// Las consultas independientes corren en paralelo contra el pool.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type revenueResult struct {
		revenue decimal.Decimal
		err     error
	}
	type countResult struct {
		count int64
		err   error
	}
	type recentResult struct {
		sales []repository.RecentSale
		err   error
	}

	totalCh := make(chan revenueResult, 1)
	todayCh := make(chan revenueResult, 1)
	monthCh := make(chan revenueResult, 1)
	totalCountCh := make(chan countResult, 1)
	todayCountCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		rev, err := uc.analyticsRepo.RevenueSince(ctx, nil)
		totalCh <- revenueResult{rev, err}
	}()
	go func() {
		rev, err := uc.analyticsRepo.RevenueSince(ctx, &todayStart)
		todayCh <- revenueResult{rev, err}
	}()
	go func() {
		rev, err := uc.analyticsRepo.RevenueSince(ctx, &monthStart)
		monthCh <- revenueResult{rev, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.SalesCountSince(ctx, nil)
		totalCountCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.SalesCountSince(ctx, &todayStart)
		todayCountCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.LowStockCount(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		sales, err := uc.analyticsRepo.RecentSales(ctx, dashboardRecentSales)
		recentCh <- recentResult{sales, err}
	}()

	total := <-totalCh
	today := <-todayCh
	month := <-monthCh
	totalCount := <-totalCountCh
	todayCount := <-todayCountCh
	lowStock := <-lowStockCh
	recent := <-recentCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: ingreso total: %w", total.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ingreso de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ingreso del mes: %w", month.err)
	}
	if totalCount.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de ventas: %w", totalCount.err)
	}
	if todayCount.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", todayCount.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}

	resp := &dto.DashboardStatsResponse{
		TotalRevenue:  total.revenue.Round(2),
		TodayRevenue:  today.revenue.Round(2),
		MonthRevenue:  month.revenue.Round(2),
		TotalSales:    totalCount.count,
		TodaySales:    todayCount.count,
		LowStockCount: lowStock.count,
	}
	for _, s := range recent.sales {
		resp.RecentSales = append(resp.RecentSales, dto.RecentSaleDTO{
			ID:            s.ID,
			InvoiceNumber: s.InvoiceNumber,
			Cashier:       s.CashierName,
			Total:         s.Total,
			Date:          s.SaleDate,
		})
	}
	return resp, nil
}

// RevenueChart serie de ingresos diarios de los últimos días (default 7).
// Los días sin ventas aparecen con ingreso cero para que la gráfica no
// tenga huecos.
func (uc *DashboardUseCase) RevenueChart(ctx context.Context, days int) ([]dto.RevenuePointDTO, error) {
	if days <= 0 {
		days = 7
	}
	if days > 365 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(days - 1))

	rows, err := uc.analyticsRepo.RevenueByDay(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ingresos por día: %w", err)
	}
	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		byDay[r.Day.Format("2006-01-02")] = r.Revenue
	}

	out := make([]dto.RevenuePointDTO, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format("2006-01-02")
		revenue, ok := byDay[key]
		if !ok {
			revenue = decimal.Zero
		}
		out = append(out, dto.RevenuePointDTO{Date: key, Revenue: revenue.Round(2)})
	}
	return out, nil
}

// SalesReport devuelve el detalle de ventas en el rango [from, to].
func (uc *DashboardUseCase) SalesReport(ctx context.Context, from, to time.Time) ([]dto.SalesReportRowDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.analyticsRepo.SalesReport(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	out := make([]dto.SalesReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesReportRowDTO{
			SaleID:        r.SaleID,
			InvoiceNumber: r.InvoiceNumber,
			Branch:        r.BranchName,
			Cashier:       r.CashierName,
			Total:         r.Total,
			PaymentMethod: r.PaymentMethod,
			Status:        r.Status,
			Date:          r.SaleDate,
		})
	}
	return out, nil
}
