package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/repository"
)

type OrderService interface {
	CreateOrders(ctx context.Context, ownerID uint, req *dto.CreateOrderRequest) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID, callerID uint) (*model.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter, page, pageSize int) (*dto.OrderList, error)
}

type orderServiceImpl struct {
	db        *gorm.DB
	logger    *zap.Logger
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	logger *zap.Logger,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) OrderService {
	return &orderServiceImpl{
		db:        db,
		logger:    logger,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// CreateOrders writes one order row per cart line, all inside a single
// transaction: an unknown product anywhere in the cart rolls the whole
// checkout back. The unit price comes from the catalog at this moment and is
// frozen into each row.
func (s *orderServiceImpl) CreateOrders(ctx context.Context, ownerID uint, req *dto.CreateOrderRequest) ([]model.Order, error) {
	if len(req.Items) == 0 {
		return nil, Validationf("No items provided")
	}
	if req.PaymentToken == "" {
		return nil, Validationf("Payment token required")
	}
	for _, item := range req.Items {
		if item.Qty <= 0 {
			return nil, Validationf("item quantity must be positive")
		}
	}

	status := model.StatusPending
	if req.PaymentResult != nil {
		status = model.ClassifyPayment(req.PaymentResult.Status, req.PaymentResult.TransactionStatus)
	}

	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "User", ID: ownerID}
		}
		return nil, fmt.Errorf("load order owner: %w", err)
	}

	orders := make([]model.Order, 0, len(req.Items))

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			var product model.Product
			if err := tx.Where("id = ?", item.ID).First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Entity: "Product", ID: item.ID}
				}
				return fmt.Errorf("load product %d: %w", item.ID, err)
			}

			totalPrice, platformFee, grossTotal := pricing.LineAmounts(product.Price, item.Qty)

			order := model.Order{
				UserID:      ownerID,
				ProductID:   product.ID,
				Quantity:    item.Qty,
				TotalPrice:  totalPrice,
				PlatformFee: platformFee,
				GrossTotal:  grossTotal,
				Status:      status,
			}
			if err := s.orderRepo.Create(ctx, tx, &order); err != nil {
				return fmt.Errorf("store order in db: %w", err)
			}

			order.User = *owner
			order.Product = product
			orders = append(orders, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("orders created",
		zap.Uint("user_id", ownerID),
		zap.Int("lines", len(orders)),
		zap.String("status", string(status)),
	)

	return orders, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID, callerID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Order", ID: orderID}
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	// Orders are strictly owner-scoped, admins included.
	if order.UserID != callerID {
		return nil, ErrForbidden
	}

	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, filter repository.OrderFilter, page, pageSize int) (*dto.OrderList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orders, err := s.orderRepo.List(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	return &dto.OrderList{
		Orders: orders,
		Pagination: dto.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalOrders: total,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}
