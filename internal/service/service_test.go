package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// newTestDB opens a per-test in-memory SQLite database. The DSN is named
// after the test so parallel tests never share state, cache=shared keeps
// every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:        name,
		Price:       price,
		Description: "test product",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedOrder(t *testing.T, db *gorm.DB, userID, productID uint, qty, unitPrice int64, status model.OrderStatus, createdAt time.Time) *model.Order {
	t.Helper()

	total := unitPrice * qty
	fee := total * 2 / 100
	order := &model.Order{
		UserID:      userID,
		ProductID:   productID,
		Quantity:    qty,
		TotalPrice:  total,
		PlatformFee: fee,
		GrossTotal:  total + fee,
		Status:      status,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
