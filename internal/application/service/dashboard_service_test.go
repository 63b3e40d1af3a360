package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAt(ts time.Time, cents int64) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		TotalAmount: cents,
		CreatedAt:   ts,
	}
}

func TestBucketRevenue_Daily(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 0, 0, 0, time.Local)
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	orders := []entity.Order{
		*orderAt(today.Add(10*time.Hour), 50000),                 // today
		*orderAt(today.Add(24*time.Hour-time.Millisecond), 1000), // today, last millisecond
		*orderAt(today.AddDate(0, 0, -1), 20000),                 // yesterday at midnight
		*orderAt(today.AddDate(0, 0, -7), 99999),                 // outside a 7-day window
	}

	points := BucketRevenue(orders, PeriodWeek, now)
	require.Len(t, points, 7)

	assert.Equal(t, "2025-03-09", points[0].Date)
	assert.Equal(t, "2025-03-15", points[6].Date)
	assert.Equal(t, 510.00, points[6].Revenue, "both boundary orders count for today")
	assert.Equal(t, 200.00, points[5].Revenue)
	assert.Equal(t, 0.00, points[0].Revenue, "order 7 days back falls outside the trailing window")
}

func TestBucketRevenue_Monthly(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	orders := []entity.Order{
		*orderAt(time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), 10000),
		*orderAt(time.Date(2025, 2, 28, 23, 59, 59, 999000000, time.Local), 20000),
		*orderAt(time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local), 30000),
		*orderAt(time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local), 70000), // before the 12-month window
	}

	points := BucketRevenue(orders, PeriodYear, now)
	require.Len(t, points, 12)

	assert.Equal(t, "2024-04", points[0].Date)
	assert.Equal(t, 300.00, points[0].Revenue)
	assert.Equal(t, "2025-02", points[10].Date)
	assert.Equal(t, 200.00, points[10].Revenue, "last millisecond of the month is inclusive")
	assert.Equal(t, "2025-03", points[11].Date)
	assert.Equal(t, 100.00, points[11].Revenue)
}

func TestBucketRevenue_PermutationInvariant(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	a := *orderAt(now.Add(-time.Hour), 100)
	b := *orderAt(now.Add(-2*time.Hour), 250)
	c := *orderAt(now.Add(-3*time.Hour), 999)

	forward := BucketRevenue([]entity.Order{a, b, c}, PeriodWeek, now)
	reversed := BucketRevenue([]entity.Order{c, b, a}, PeriodWeek, now)
	assert.Equal(t, forward, reversed)
}

func TestTotalRevenueCents(t *testing.T) {
	now := time.Now()
	orders := []entity.Order{
		*orderAt(now, 100),
		*orderAt(now, 250),
		*orderAt(now, 0),
	}
	assert.Equal(t, int64(350), TotalRevenueCents(orders))
	assert.Equal(t, int64(0), TotalRevenueCents(nil))
}

func TestGetStats(t *testing.T) {
	orderRepo := &mockOrderRepository{}
	customerRepo := &mockCustomerRepository{}
	svc := NewDashboardService(orderRepo, customerRepo)

	todayStart, _ := DayBounds(time.Now())
	orderRepo.orders = []*entity.Order{
		orderAt(todayStart.Add(12*time.Hour), 100000),
		orderAt(todayStart.Add(-36*time.Hour), 50000),
	}
	customerRepo.customers = []*entity.Customer{
		{ID: uuid.New(), CustomerNo: 1},
	}

	stats, err := svc.GetStats(context.Background(), PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, 1500.00, stats.TotalRevenue)
	assert.Equal(t, 1, stats.TodayOrders)
	assert.Equal(t, 1000.00, stats.TodayRevenue)
	assert.Len(t, stats.RevenueSeries, 7)
	assert.Len(t, stats.RecentOrders, 2)
}

func TestGetStats_InvalidPeriod(t *testing.T) {
	svc := NewDashboardService(&mockOrderRepository{}, &mockCustomerRepository{})

	_, err := svc.GetStats(context.Background(), "fortnight")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
