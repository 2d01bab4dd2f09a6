package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/repository"
)

const (
	defaultTrendMonths = 6
	defaultTopProducts = 5
)

// Chart colors the admin UI expects per status; anything unknown falls back
// to gray.
var statusColors = map[model.OrderStatus]string{
	model.StatusSuccess:  "#10b981",
	model.StatusPending:  "#f59e0b",
	model.StatusCanceled: "#ef4444",
	model.StatusRejected: "#6b7280",
}

const fallbackStatusColor = "#6b7280"

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	RevenueTrend(ctx context.Context, months int) ([]dto.RevenuePoint, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error)
	OrderStatusDistribution(ctx context.Context) ([]dto.StatusSlice, error)
}

type dashboardServiceImpl struct {
	logger      *zap.Logger
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewDashboardService(
	logger *zap.Logger,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) DashboardService {
	return &dashboardServiceImpl{
		logger:      logger,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// Stats snapshots the dashboard cards. Order and revenue totals span the
// current plus the previous calendar month; the growth figures compare those
// two windows. Products and users have no history to compare, their growth
// is always 0.
func (s *dashboardServiceImpl) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	now := s.now()
	curStart, curEnd := pricing.MonthWindow(now)
	prevStart := pricing.MonthsAgo(now, 1)

	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	curOrders, err := s.orderRepo.CountBetween(ctx, curStart, curEnd)
	if err != nil {
		return nil, fmt.Errorf("count current month orders: %w", err)
	}
	prevOrders, err := s.orderRepo.CountBetween(ctx, prevStart, curStart)
	if err != nil {
		return nil, fmt.Errorf("count last month orders: %w", err)
	}

	curRevenue, err := s.orderRepo.SumGrossTotalBetween(ctx, curStart, curEnd)
	if err != nil {
		return nil, fmt.Errorf("sum current month revenue: %w", err)
	}
	prevRevenue, err := s.orderRepo.SumGrossTotalBetween(ctx, prevStart, curStart)
	if err != nil {
		return nil, fmt.Errorf("sum last month revenue: %w", err)
	}

	return &dto.DashboardStats{
		TotalProducts: totalProducts,
		TotalOrders:   curOrders + prevOrders,
		TotalRevenue:  curRevenue + prevRevenue,
		TotalUsers:    totalUsers,
		MonthlyGrowth: dto.MonthlyGrowth{
			Products: 0,
			Orders:   pricing.Growth(curOrders, prevOrders),
			Revenue:  pricing.Growth(curRevenue, prevRevenue),
			Users:    0,
		},
	}, nil
}

// RevenueTrend returns one bucket per calendar month, oldest first, the last
// bucket being the current month.
func (s *dashboardServiceImpl) RevenueTrend(ctx context.Context, months int) ([]dto.RevenuePoint, error) {
	if months < 1 {
		months = defaultTrendMonths
	}

	now := s.now()
	points := make([]dto.RevenuePoint, 0, months)

	for i := months - 1; i >= 0; i-- {
		start := pricing.MonthsAgo(now, i)
		end := start.AddDate(0, 1, 0)

		revenue, err := s.orderRepo.SumGrossTotalBetween(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("sum revenue for %s: %w", start.Format("2006-01"), err)
		}
		count, err := s.orderRepo.CountBetween(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("count orders for %s: %w", start.Format("2006-01"), err)
		}

		points = append(points, dto.RevenuePoint{
			Month:   pricing.ShortMonth(start.Month()),
			Revenue: revenue,
			Orders:  count,
		})
	}

	return points, nil
}

// TopProducts ranks products by summed gross revenue across the whole ledger.
func (s *dashboardServiceImpl) TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	if limit < 1 {
		limit = defaultTopProducts
	}

	rows, err := s.orderRepo.SalesByProduct(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregate sales by product: %w", err)
	}

	top := make([]dto.TopProduct, 0, len(rows))
	for _, row := range rows {
		name := "Deleted product"
		product, err := s.productRepo.FindByID(ctx, row.ProductID)
		switch {
		case err == nil:
			name = product.Name
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Orders outlive catalog deletes, keep the row with a placeholder.
			s.logger.Warn("top product no longer in catalog", zap.Uint("product_id", row.ProductID))
		default:
			return nil, fmt.Errorf("load product %d: %w", row.ProductID, err)
		}

		top = append(top, dto.TopProduct{
			ID:       row.ProductID,
			Name:     name,
			Orders:   row.OrderCount,
			Quantity: row.QuantitySum,
			Revenue:  row.RevenueSum,
		})
	}

	return top, nil
}

// OrderStatusDistribution buckets the whole ledger by status. Percentages are
// rounded per slice and may not sum to exactly 100.
func (s *dashboardServiceImpl) OrderStatusDistribution(ctx context.Context) ([]dto.StatusSlice, error) {
	rows, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	var total int64
	for _, row := range rows {
		total += row.Count
	}

	slices := make([]dto.StatusSlice, 0, len(rows))
	for _, row := range rows {
		color, ok := statusColors[row.Status]
		if !ok {
			color = fallbackStatusColor
		}

		slices = append(slices, dto.StatusSlice{
			Name:  capitalize(string(row.Status)),
			Value: pricing.Percent(row.Count, total),
			Count: row.Count,
			Color: color,
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		return slices[i].Count > slices[j].Count
	})

	return slices, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
