package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront/internal/model"
	"storefront/internal/repository"
)

func newDashboardService(t *testing.T, now time.Time) (DashboardService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := &dashboardServiceImpl{
		logger:      testLogger(),
		productRepo: repository.NewProductRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
		userRepo:    repository.NewUserRepository(db),
		now:         func() time.Time { return now },
	}
	return svc, db
}

func TestStatsWindowsAndGrowth(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, db := newDashboardService(t, now)
	ctx := context.Background()

	user := seedUser(t, db, "User", "user@example.com", model.RoleUser)
	product := seedProduct(t, db, "Keyboard", 10000)

	// Two months back, outside both windows.
	seedOrder(t, db, user.ID, product.ID, 1, 10000, model.StatusSuccess,
		time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))
	// Last month: 2 orders, gross 10200 each.
	seedOrder(t, db, user.ID, product.ID, 1, 10000, model.StatusSuccess,
		time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC))
	seedOrder(t, db, user.ID, product.ID, 1, 10000, model.StatusSuccess,
		time.Date(2025, time.July, 31, 23, 0, 0, 0, time.UTC)) // late on the last day still counts
	// Current month: 3 orders.
	for day := 1; day <= 3; day++ {
		seedOrder(t, db, user.ID, product.ID, 1, 10000, model.StatusPending,
			time.Date(2025, time.August, day, 12, 0, 0, 0, time.UTC))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.TotalUsers)
	// Current + last month only; June stays out.
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.Equal(t, int64(5*10200), stats.TotalRevenue)

	assert.Equal(t, 0, stats.MonthlyGrowth.Products)
	assert.Equal(t, 0, stats.MonthlyGrowth.Users)
	assert.Equal(t, 50, stats.MonthlyGrowth.Orders)  // 2 -> 3
	assert.Equal(t, 50, stats.MonthlyGrowth.Revenue) // 20400 -> 30600
}

func TestStatsGrowthZeroPrevious(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, db := newDashboardService(t, now)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MonthlyGrowth.Orders) // 0 -> 0

	user := seedUser(t, db, "User", "user@example.com", model.RoleUser)
	product := seedProduct(t, db, "Keyboard", 10000)
	for i := 0; i < 5; i++ {
		seedOrder(t, db, user.ID, product.ID, 1, 10000, model.StatusSuccess,
			time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC))
	}

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.MonthlyGrowth.Orders) // 0 -> 5
}

func TestStatsGrowthDecline(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, db := newDashboardService(t, now)
	ctx := context.Background()

	user := seedUser(t, db, "User", "user@example.com", model.RoleUser)
	product := seedProduct(t, db, "Keyboard", 100)

	for i := 0; i < 200; i++ {
		seedOrder(t, db, user.ID, product.ID, 1, 100, model.StatusSuccess,
			time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC))
	}
	for i := 0; i < 150; i++ {
		seedOrder(t, db, user.ID, product.ID, 1, 100, model.StatusSuccess,
			time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, -25, stats.MonthlyGrowth.Orders)
}

func TestRevenueTrend(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, db := newDashboardService(t, now)
	ctx := context.Background()

	user := seedUser(t, db, "User", "user@example.com", model.RoleUser)
	product := seedProduct(t, db, "Keyboard", 10000)

	seedOrder(t, db, user.ID, product.ID, 1, 10000, model.StatusSuccess,
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	seedOrder(t, db, user.ID, product.ID, 2, 10000, model.StatusSuccess,
		time.Date(2025, time.August, 15, 9, 59, 0, 0, time.UTC)) // "now" is in the last bucket

	trend, err := svc.RevenueTrend(ctx, 3)
	require.NoError(t, err)
	require.Len(t, trend, 3)

	// Oldest first: Jun, Jul, Agu.
	assert.Equal(t, "Jun", trend[0].Month)
	assert.Equal(t, "Jul", trend[1].Month)
	assert.Equal(t, "Agu", trend[2].Month)

	assert.Equal(t, int64(10200), trend[0].Revenue)
	assert.Equal(t, int64(1), trend[0].Orders)

	// Empty month reads as zero, not missing.
	assert.Equal(t, int64(0), trend[1].Revenue)
	assert.Equal(t, int64(0), trend[1].Orders)

	assert.Equal(t, int64(20400), trend[2].Revenue)
	assert.Equal(t, int64(1), trend[2].Orders)
}

func TestRevenueTrendDefaultsToSixMonths(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, _ := newDashboardService(t, now)

	trend, err := svc.RevenueTrend(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, trend, 6)
	assert.Equal(t, "Mar", trend[0].Month)
	assert.Equal(t, "Agu", trend[5].Month)
}

func TestTopProducts(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, db := newDashboardService(t, now)
	ctx := context.Background()

	user := seedUser(t, db, "User", "user@example.com", model.RoleUser)
	productA := seedProduct(t, db, "Product A", 25000)
	productB := seedProduct(t, db, "Product B", 35000)
	productC := seedProduct(t, db, "Product C", 1000)

	// A: two orders, gross 50000 + fees. B: one order, gross 70000 + fee.
	seedOrder(t, db, user.ID, productA.ID, 1, 25000, model.StatusSuccess, now)
	seedOrder(t, db, user.ID, productA.ID, 1, 25000, model.StatusSuccess, now)
	seedOrder(t, db, user.ID, productB.ID, 2, 35000, model.StatusSuccess, now)
	seedOrder(t, db, user.ID, productC.ID, 1, 1000, model.StatusSuccess, now)

	top, err := svc.TopProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Product B", top[0].Name)
	assert.Equal(t, int64(71400), top[0].Revenue) // 70000 + 2% fee
	assert.Equal(t, int64(1), top[0].Orders)
	assert.Equal(t, int64(2), top[0].Quantity)

	assert.Equal(t, "Product A", top[1].Name)
	assert.Equal(t, int64(51000), top[1].Revenue)
	assert.Equal(t, int64(2), top[1].Orders)
}

func TestTopProductsSurvivesDeletedProduct(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, db := newDashboardService(t, now)
	ctx := context.Background()

	user := seedUser(t, db, "User", "user@example.com", model.RoleUser)
	product := seedProduct(t, db, "Ghost", 10000)
	seedOrder(t, db, user.ID, product.ID, 1, 10000, model.StatusSuccess, now)

	require.NoError(t, db.Delete(&model.Product{}, product.ID).Error)

	top, err := svc.TopProducts(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Deleted product", top[0].Name)
	assert.Equal(t, int64(10200), top[0].Revenue)
}

func TestOrderStatusDistribution(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, db := newDashboardService(t, now)
	ctx := context.Background()

	user := seedUser(t, db, "User", "user@example.com", model.RoleUser)
	product := seedProduct(t, db, "Keyboard", 1000)

	for i := 0; i < 3; i++ {
		seedOrder(t, db, user.ID, product.ID, 1, 1000, model.StatusSuccess, now)
	}
	seedOrder(t, db, user.ID, product.ID, 1, 1000, model.StatusPending, now)

	dist, err := svc.OrderStatusDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, dist, 2)

	// Sorted by count descending.
	assert.Equal(t, "Success", dist[0].Name)
	assert.Equal(t, 75, dist[0].Value)
	assert.Equal(t, int64(3), dist[0].Count)
	assert.Equal(t, "#10b981", dist[0].Color)

	assert.Equal(t, "Pending", dist[1].Name)
	assert.Equal(t, 25, dist[1].Value)
	assert.Equal(t, int64(1), dist[1].Count)
	assert.Equal(t, "#f59e0b", dist[1].Color)

	var total int64
	for _, slice := range dist {
		total += slice.Count
	}
	assert.Equal(t, int64(4), total)
}

func TestOrderStatusDistributionEmptyLedger(t *testing.T) {
	now := time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
	svc, _ := newDashboardService(t, now)

	dist, err := svc.OrderStatusDistribution(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dist)
}
