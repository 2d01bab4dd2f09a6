package dto

import "storefront/internal/model"

// CheckoutItem is one cart line as the storefront sends it. Price is the
// unit price in the smallest currency unit.
type CheckoutItem struct {
	ID    uint   `json:"id" validate:"required"`
	Name  string `json:"name"`
	Price int64  `json:"price" validate:"gte=0"`
	Qty   int64  `json:"qty" validate:"required,gt=0"`
}

// PaymentResult is the outcome the provider's client-side widget reported.
// Which of the two fields is set depends on the widget callback.
type PaymentResult struct {
	Status            string `json:"status"`
	TransactionStatus string `json:"transaction_status"`
}

type CreateOrderRequest struct {
	Items         []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	PaymentToken  string         `json:"paymentToken" validate:"required"`
	PaymentResult *PaymentResult `json:"paymentResult"`
}

type Customer struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
}

type PayRequest struct {
	Items    []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	Customer Customer       `json:"customer" validate:"required"`
}

type SnapTransaction struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type OrderList struct {
	Orders     []model.Order `json:"orders"`
	Pagination Pagination    `json:"pagination"`
}

type MonthlyGrowth struct {
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Revenue  int `json:"revenue"`
	Users    int `json:"users"`
}

// DashboardStats mirrors the admin dashboard cards. TotalOrders and
// TotalRevenue cover the current plus previous calendar month, not all time.
type DashboardStats struct {
	TotalProducts int64         `json:"totalProducts"`
	TotalOrders   int64         `json:"totalOrders"`
	TotalRevenue  int64         `json:"totalRevenue"`
	TotalUsers    int64         `json:"totalUsers"`
	MonthlyGrowth MonthlyGrowth `json:"monthlyGrowth"`
}

type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
	Orders  int64  `json:"orders"`
}

type TopProduct struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Orders   int64  `json:"orders"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // percentage, rounded per slice
	Count int64  `json:"count"`
	Color string `json:"color"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
