package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dishpatch/internal/model"
)

// newTestDB opens a fresh in-memory SQLite database with foreign keys on.
// The pool is pinned to one connection: every pooled connection would
// otherwise see its own private in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open("file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)"),
		&gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.DefaultSchema().Models()...))
	return db
}

func mustUser(t *testing.T, db *gorm.DB, email string, role model.Role) *model.User {
	t.Helper()
	user, err := NewUserRepository(db).Insert(context.Background(), &model.NewUser{
		FullName: "Test User",
		Email:    email,
		Password: "opaque-hash",
		Role:     &role,
	})
	require.NoError(t, err)
	return user
}

func mustRestaurant(t *testing.T, db *gorm.DB, ownerID uuid.UUID, email string) *model.Restaurant {
	t.Helper()
	restaurant, err := NewRestaurantRepository(db).Insert(context.Background(), &model.NewRestaurant{
		OwnerID: ownerID,
		Name:    "Test Restaurant",
		Email:   email,
	})
	require.NoError(t, err)
	return restaurant
}

func mustCategory(t *testing.T, db *gorm.DB, restaurantID uuid.UUID, name string) *model.MenuCategory {
	t.Helper()
	category, err := NewMenuCategoryRepository(db).Insert(context.Background(), &model.NewMenuCategory{
		RestaurantID: restaurantID,
		Name:         name,
	})
	require.NoError(t, err)
	return category
}

func mustMenuItem(t *testing.T, db *gorm.DB, restaurantID, categoryID uuid.UUID, name, price string) *model.MenuItem {
	t.Helper()
	item, err := NewMenuItemRepository(db).Insert(context.Background(), &model.NewMenuItem{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         name,
		Price:        decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, db *gorm.DB, orderNumber string, customerID, restaurantID uuid.UUID, items []model.NewOrderItem) *model.Order {
	t.Helper()
	order, err := NewOrderRepository(db).Insert(context.Background(), &model.NewOrder{
		OrderNumber:     orderNumber,
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		Subtotal:        decimal.RequireFromString("16.00"),
		TotalAmount:     decimal.RequireFromString("16.00"),
		DeliveryAddress: "45 Avenida da Liberdade",
	}, items)
	require.NoError(t, err)
	return order
}

func countRows(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(value).Count(&count).Error)
	return count
}
