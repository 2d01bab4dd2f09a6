package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// OrderFilter narrows list queries. Start and End bound createdAt inclusively
// and are only applied when both are set.
type OrderFilter struct {
	Status    model.OrderStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// ProductSales is one row of the orders-grouped-by-product aggregate.
type ProductSales struct {
	ProductID   uint  `gorm:"column:product_id"`
	OrderCount  int64 `gorm:"column:order_count"`
	QuantitySum int64 `gorm:"column:quantity_sum"`
	RevenueSum  int64 `gorm:"column:revenue_sum"`
}

// StatusCount is one row of the orders-grouped-by-status aggregate.
type StatusCount struct {
	Status model.OrderStatus `gorm:"column:status"`
	Count  int64             `gorm:"column:order_count"`
}

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	FindByID(ctx context.Context, orderID uint) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter, offset, limit int) ([]model.Order, error)
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
	SumGrossTotalBetween(ctx context.Context, start, end time.Time) (int64, error)
	SalesByProduct(ctx context.Context, limit int) ([]ProductSales, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) filtered(ctx context.Context, filter OrderFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("created_at >= ? AND created_at <= ?", *filter.StartDate, *filter.EndDate)
	}
	return q
}

func (r *orderRepoImpl) List(ctx context.Context, filter OrderFilter, offset, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.filtered(ctx, filter).
		Preload("User").
		Preload("Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) Count(ctx context.Context, filter OrderFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, filter).Count(&count).Error
	return count, err
}

func (r *orderRepoImpl) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error

	return count, err
}

func (r *orderRepoImpl) SumGrossTotalBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(gross_total), 0)").
		Scan(&sum).Error

	return sum, err
}

func (r *orderRepoImpl) SalesByProduct(ctx context.Context, limit int) ([]ProductSales, error) {
	var rows []ProductSales
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("product_id, COUNT(id) AS order_count, SUM(quantity) AS quantity_sum, SUM(gross_total) AS revenue_sum").
		Group("product_id").
		Order("revenue_sum DESC").
		Limit(limit).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *orderRepoImpl) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("status, COUNT(id) AS order_count").
		Group("status").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}
