package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.uber.org/zap"

	"storefront/internal/client"
	"storefront/internal/dto"
	"storefront/internal/pricing"
)

type PaymentService interface {
	CreateTransaction(ctx context.Context, req *dto.PayRequest) (*dto.SnapTransaction, error)
}

type paymentServiceImpl struct {
	logger      *zap.Logger
	snapClient  client.SnapClient
	frontendURL string
	now         func() time.Time
}

func NewPaymentService(logger *zap.Logger, snapClient client.SnapClient, frontendURL string) PaymentService {
	return &paymentServiceImpl{
		logger:      logger,
		snapClient:  snapClient,
		frontendURL: frontendURL,
		now:         time.Now,
	}
}

// CreateTransaction asks the provider for a Snap token covering the cart plus
// the platform fee, which rides along as its own line item so the widget
// shows it. Every call mints a fresh order reference; retries are the
// caller's problem.
func (s *paymentServiceImpl) CreateTransaction(ctx context.Context, req *dto.PayRequest) (*dto.SnapTransaction, error) {
	if len(req.Items) == 0 {
		return nil, Validationf("No items provided")
	}

	var subtotal int64
	for _, item := range req.Items {
		if item.Qty <= 0 {
			return nil, Validationf("item quantity must be positive")
		}
		subtotal += item.Price * item.Qty
	}
	platformFee := pricing.PlatformFee(subtotal)
	grossAmount := subtotal + platformFee

	orderRef := fmt.Sprintf("ORDER-%d", s.now().UnixMilli())

	items := make([]midtrans.ItemDetails, 0, len(req.Items)+1)
	for _, item := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    strconv.FormatUint(uint64(item.ID), 10),
			Name:  item.Name,
			Price: item.Price,
			Qty:   int32(item.Qty),
		})
	}
	items = append(items, midtrans.ItemDetails{
		ID:    "PLATFORM_FEE",
		Name:  "Platform Fee",
		Price: platformFee,
		Qty:   1,
	})

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: grossAmount,
		},
		Items: &items,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.Customer.FirstName,
			LName: req.Customer.LastName,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Callbacks: &snap.Callbacks{
			Finish: s.frontendURL + "/orders/success",
		},
	}

	resp, err := s.snapClient.CreateTransaction(ctx, snapReq)
	if err != nil {
		// Provider detail stays out of the response.
		s.logger.Error("snap transaction failed",
			zap.String("order_ref", orderRef),
			zap.Int64("gross_amount", grossAmount),
			zap.Error(err),
		)
		return nil, ErrPaymentGateway
	}

	return &dto.SnapTransaction{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}
