package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"dishpatch/internal/config"
	"dishpatch/internal/db"
	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
	"dishpatch/internal/repository"
	"dishpatch/internal/statemachine"
)

// Seeds a small but coherent demo dataset: an owner with a restaurant and
// menu, two customers, a driver, one delivered order with its full status
// trail, and a login session. Safe to run repeatedly.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	schema := model.DefaultSchema()
	if err := db.Migrate(gormDB, schema); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	sessions := repository.NewSessionRepository(gormDB)
	restaurants := repository.NewRestaurantRepository(gormDB)
	categories := repository.NewMenuCategoryRepository(gormDB)
	items := repository.NewMenuItemRepository(gormDB)
	orders := repository.NewOrderRepository(gormDB)

	owner := seedUser(ctx, users, "Luigi Moretti", "luigi@trattoria.example", model.RoleRestaurantOwner)
	customer := seedUser(ctx, users, "Dana Whitfield", "dana@example.com", model.RoleCustomer)
	seedUser(ctx, users, "Priya Raman", "priya@example.com", model.RoleCustomer)
	driver := seedUser(ctx, users, "Marco Silva", "marco.driver@example.com", model.RoleDriver)

	restaurant := seedRestaurant(ctx, restaurants, owner.ID)
	mains := seedCategory(ctx, categories, restaurant.ID, "Mains", 1)
	drinks := seedCategory(ctx, categories, restaurant.ID, "Drinks", 2)

	margherita := seedItem(ctx, items, restaurant.ID, mains.ID, "Margherita", "4.50", 12)
	lemonade := seedItem(ctx, items, restaurant.ID, drinks.ID, "Lemonade", "2.50", 2)

	seedOrder(ctx, orders, customer.ID, restaurant.ID, driver.ID, margherita, lemonade)
	seedSession(ctx, sessions, customer.ID)

	log.Println("Seed completed successfully!")
}

func seedUser(ctx context.Context, repo repository.UserRepository, name, email string, role model.Role) *model.User {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing
	}
	if !errors.Is(err, errs.ErrNotFound) {
		log.Fatalf("Error checking user %s: %v", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme-"+email), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user, err := repo.Insert(ctx, &model.NewUser{
		FullName: name,
		Email:    email,
		Password: string(hash),
		Role:     &role,
		City:     "Lisbon",
	})
	if err != nil {
		log.Fatalf("Failed to create user %s: %v", email, err)
	}
	log.Printf("Created %s user %s", role, email)
	return user
}

func seedRestaurant(ctx context.Context, repo repository.RestaurantRepository, ownerID uuid.UUID) *model.Restaurant {
	const email = "orders@trattoria.example"
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing
	}
	if !errors.Is(err, errs.ErrNotFound) {
		log.Fatalf("Error checking restaurant: %v", err)
	}

	restaurant, err := repo.Insert(ctx, &model.NewRestaurant{
		OwnerID:     ownerID,
		Name:        "Luigi's Trattoria",
		Description: "Wood-fired pizza and fresh pasta",
		CuisineType: "Italian",
		Address:     "12 Rua das Flores",
		City:        "Lisbon",
		Latitude:    decimal.NewNullDecimal(decimal.RequireFromString("38.71009900")),
		Longitude:   decimal.NewNullDecimal(decimal.RequireFromString("-9.13998800")),
		Phone:       "+351210000000",
		Email:       email,
	})
	if err != nil {
		log.Fatalf("Failed to create restaurant: %v", err)
	}
	log.Printf("Created restaurant %s", restaurant.Name)
	return restaurant
}

func seedCategory(ctx context.Context, repo repository.MenuCategoryRepository, restaurantID uuid.UUID, name string, sortOrder int) *model.MenuCategory {
	existing, err := repo.ListByRestaurantID(ctx, restaurantID)
	if err != nil {
		log.Fatalf("Error listing categories: %v", err)
	}
	for i := range existing {
		if existing[i].Name == name {
			return &existing[i]
		}
	}

	category, err := repo.Insert(ctx, &model.NewMenuCategory{
		RestaurantID: restaurantID,
		Name:         name,
		SortOrder:    &sortOrder,
	})
	if err != nil {
		log.Fatalf("Failed to create category %s: %v", name, err)
	}
	return category
}

func seedItem(ctx context.Context, repo repository.MenuItemRepository, restaurantID, categoryID uuid.UUID, name, price string, prepMinutes int) *model.MenuItem {
	existing, err := repo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		log.Fatalf("Error listing items: %v", err)
	}
	for i := range existing {
		if existing[i].Name == name {
			return &existing[i]
		}
	}

	item, err := repo.Insert(ctx, &model.NewMenuItem{
		RestaurantID:    restaurantID,
		CategoryID:      categoryID,
		Name:            name,
		Price:           decimal.RequireFromString(price),
		PreparationTime: &prepMinutes,
	})
	if err != nil {
		log.Fatalf("Failed to create item %s: %v", name, err)
	}
	return item
}

func seedOrder(ctx context.Context, repo repository.OrderRepository, customerID, restaurantID, driverID uuid.UUID, margherita, lemonade *model.MenuItem) {
	const orderNumber = "ORD-2026-000001"
	if _, err := repo.FindByOrderNumber(ctx, orderNumber); err == nil {
		return
	} else if !errors.Is(err, errs.ErrNotFound) {
		log.Fatalf("Error checking order: %v", err)
	}

	subtotal := margherita.Price.Mul(decimal.NewFromInt(3)).Add(lemonade.Price)
	deliveryFee := decimal.RequireFromString("3.00")
	order, err := repo.Insert(ctx, &model.NewOrder{
		OrderNumber:     orderNumber,
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		DriverID:        &driverID,
		Subtotal:        subtotal,
		DeliveryFee:     &deliveryFee,
		TotalAmount:     subtotal.Add(deliveryFee),
		DeliveryAddress: "45 Avenida da Liberdade, 3rd floor",
	}, []model.NewOrderItem{
		{MenuItemID: margherita.ID, MenuItemName: margherita.Name, Quantity: 3, UnitPrice: margherita.Price},
		{MenuItemID: lemonade.ID, MenuItemName: lemonade.Name, Quantity: 1, UnitPrice: lemonade.Price},
	})
	if err != nil {
		log.Fatalf("Failed to create order: %v", err)
	}

	// Walk the order through its whole lifecycle, checking each hop against
	// the transition table the way the order service would.
	current := order.Status
	for _, next := range []model.OrderStatus{
		model.OrderStatusConfirmed,
		model.OrderStatusPreparing,
		model.OrderStatusReady,
		model.OrderStatusPickedUp,
		model.OrderStatusDelivered,
	} {
		if err := statemachine.CanTransition(current, next); err != nil {
			log.Fatalf("Illegal transition while seeding: %v", err)
		}
		if _, err := repo.UpdateStatus(ctx, order.ID, next, fmt.Sprintf("seeded transition to %s", next)); err != nil {
			log.Fatalf("Failed to update order status: %v", err)
		}
		current = next
	}
	log.Printf("Created order %s (delivered)", orderNumber)
}

func seedSession(ctx context.Context, repo repository.SessionRepository, userID uuid.UUID) {
	existing, err := repo.ListByUserID(ctx, userID)
	if err != nil {
		log.Fatalf("Error listing sessions: %v", err)
	}
	if len(existing) > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("seed-session-token"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash session token: %v", err)
	}
	expires := time.Now().Add(24 * time.Hour)
	if _, err := repo.Insert(ctx, &model.NewUserSession{
		UserID:    userID,
		TokenHash: string(hash),
		ExpiresAt: &expires,
	}); err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
}
