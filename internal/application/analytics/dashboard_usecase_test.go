package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-pro/internal/application/analytics"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// memAnalyticsRepo doble read-only: devuelve los datos sembrados.
type memAnalyticsRepo struct {
	daily []repository.DailyRevenue
}

var _ repository.AnalyticsRepository = (*memAnalyticsRepo)(nil)

func (r *memAnalyticsRepo) RevenueSince(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *memAnalyticsRepo) SalesCountSince(ctx context.Context, since *time.Time) (int64, error) {
	return 0, nil
}
func (r *memAnalyticsRepo) LowStockCount(ctx context.Context) (int64, error) { return 0, nil }
func (r *memAnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSale, error) {
	return nil, nil
}
func (r *memAnalyticsRepo) SalesReport(ctx context.Context, from, to time.Time) ([]repository.SalesReportRow, error) {
	return nil, nil
}
func (r *memAnalyticsRepo) RevenueByDay(ctx context.Context, from, to time.Time) ([]repository.DailyRevenue, error) {
	var out []repository.DailyRevenue
	for _, d := range r.daily {
		if !d.Day.Before(from) && !d.Day.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestRevenueChart_RellenaDiasSinVentas(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	repo := &memAnalyticsRepo{daily: []repository.DailyRevenue{
		{Day: today.AddDate(0, 0, -2), Revenue: decimal.NewFromInt(150)},
		{Day: today, Revenue: decimal.NewFromInt(80)},
	}}
	uc := analytics.NewDashboardUseCase(repo)

	points, err := uc.RevenueChart(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	// Todos los días del rango presentes, en orden, con cero donde no hubo ventas
	byDate := make(map[string]decimal.Decimal, len(points))
	for i, p := range points {
		wantDate := today.AddDate(0, 0, -(6 - i)).Format("2006-01-02")
		assert.Equal(t, wantDate, p.Date)
		byDate[p.Date] = p.Revenue
	}
	assert.True(t, byDate[today.AddDate(0, 0, -2).Format("2006-01-02")].Equal(decimal.NewFromInt(150)))
	assert.True(t, byDate[today.Format("2006-01-02")].Equal(decimal.NewFromInt(80)))
	assert.True(t, byDate[today.AddDate(0, 0, -1).Format("2006-01-02")].IsZero())
}

func TestRevenueChart_DefaultYRangoInvalido(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&memAnalyticsRepo{})

	points, err := uc.RevenueChart(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	_, err = uc.RevenueChart(context.Background(), 1000)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
