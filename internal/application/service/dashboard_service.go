package service

import (
	"context"
	"time"

	"github.com/hallmarkbd/hallmark-api/internal/domain/entity"
	"github.com/hallmarkbd/hallmark-api/internal/domain/repository"
	"github.com/hallmarkbd/hallmark-api/pkg/apperror"
)

// Period selects the revenue series granularity
type Period string

const (
	PeriodWeek  Period = "7days"
	PeriodMonth Period = "30days"
	PeriodYear  Period = "1year"
)

// IsValid reports whether the period is one of the supported windows
func (p Period) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// recentOrdersLimit caps the dashboard activity feed.
const recentOrdersLimit = 10

// DashboardService assembles shop-wide statistics
type DashboardService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// RevenuePoint is one bucket of the revenue series
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats represents the dashboard payload
type DashboardStats struct {
	TotalCustomers int64          `json:"totalCustomers"`
	TotalOrders    int64          `json:"totalOrders"`
	TotalRevenue   float64        `json:"totalRevenue"`
	TodayRevenue   float64        `json:"todayRevenue"`
	TodayOrders    int            `json:"todayOrders"`
	MonthRevenue   float64        `json:"monthRevenue"`
	YearRevenue    float64        `json:"yearRevenue"`
	RevenueSeries  []RevenuePoint `json:"revenueSeries"`
	RecentOrders   []entity.Order `json:"recentOrders"`
}

// BucketRevenue buckets order revenue over the trailing window ending at
// now: one bucket per day for 7days/30days, one per calendar month for
// 1year. An order belongs to a bucket when its createdAt falls inside
// the bucket's inclusive [start, end] window.
func BucketRevenue(orders []entity.Order, period Period, now time.Time) []RevenuePoint {
	if period == PeriodYear {
		return bucketByMonth(orders, now, 12)
	}
	days := 7
	if period == PeriodMonth {
		days = 30
	}
	return bucketByDay(orders, now, days)
}

func bucketByDay(orders []entity.Order, now time.Time, days int) []RevenuePoint {
	points := make([]RevenuePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start, end := DayBounds(day)

		var cents int64
		for _, o := range orders {
			if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
				cents += o.TotalAmount
			}
		}
		points = append(points, RevenuePoint{
			Date:    start.Format("2006-01-02"),
			Revenue: float64(cents) / 100,
		})
	}
	return points
}

func bucketByMonth(orders []entity.Order, now time.Time, months int) []RevenuePoint {
	points := make([]RevenuePoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

		var cents int64
		for _, o := range orders {
			if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
				cents += o.TotalAmount
			}
		}
		points = append(points, RevenuePoint{
			Date:    start.Format("2006-01"),
			Revenue: float64(cents) / 100,
		})
	}
	return points
}

// GetStats computes the dashboard for the window selected by period,
// anchored at the current time.
func (s *DashboardService) GetStats(ctx context.Context, period Period) (*DashboardStats, error) {
	if !period.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid period")
	}

	stats := &DashboardStats{}

	customerCount, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerCount

	orderCount, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = orderCount

	revenueCents, err := s.orderRepo.TotalRevenueCents(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(revenueCents) / 100

	now := time.Now()

	// Today's numbers reuse the same inclusive day window as the order
	// date filter.
	todayStart, todayEnd := DayBounds(now)
	todayOrders, err := s.orderRepo.ListByCreatedRange(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	stats.TodayOrders = len(todayOrders)
	stats.TodayRevenue = float64(TotalRevenueCents(todayOrders)) / 100

	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	yearEnd := yearStart.AddDate(1, 0, 0).Add(-time.Millisecond)
	yearOrders, err := s.orderRepo.ListByCreatedRange(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	stats.YearRevenue = float64(TotalRevenueCents(yearOrders)) / 100

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Millisecond)
	var monthCents int64
	for _, o := range yearOrders {
		if !o.CreatedAt.Before(monthStart) && !o.CreatedAt.After(monthEnd) {
			monthCents += o.TotalAmount
		}
	}
	stats.MonthRevenue = float64(monthCents) / 100

	// Revenue series over the selected trailing window.
	seriesStart := seriesWindowStart(period, now)
	seriesOrders, err := s.orderRepo.ListByCreatedRange(ctx, seriesStart, todayEnd)
	if err != nil {
		return nil, err
	}
	stats.RevenueSeries = BucketRevenue(seriesOrders, period, now)

	recent, err := s.orderRepo.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = recent

	return stats, nil
}

// TotalRevenueCents sums order totals. Pure summation over the slice.
func TotalRevenueCents(orders []entity.Order) int64 {
	var cents int64
	for _, o := range orders {
		cents += o.TotalAmount
	}
	return cents
}

func seriesWindowStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodYear:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	case PeriodMonth:
		start, _ := DayBounds(now.AddDate(0, 0, -29))
		return start
	default:
		start, _ := DayBounds(now.AddDate(0, 0, -6))
		return start
	}
}
