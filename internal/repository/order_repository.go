package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
)

// OrderRepository defines order persistence operations. Orders carry their
// line items and an append-only status history; every multi-row write runs in
// one transaction so partial application is impossible.
type OrderRepository interface {
	Insert(ctx context.Context, n *model.NewOrder, items []model.NewOrderItem) (*model.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
	ListByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, note string) (*model.Order, error)
	AssignDriver(ctx context.Context, id, driverID uuid.UUID) error
	Items(ctx context.Context, id uuid.UUID) ([]model.OrderItem, error)
	History(ctx context.Context, id uuid.UUID) ([]model.OrderStatusHistory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Insert creates the order, its line items and the initial history row in a
// single transaction. Line totals are computed from quantity and unit price.
func (r *orderRepository) Insert(ctx context.Context, n *model.NewOrder, items []model.NewOrderItem) (*model.Order, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: an order needs at least one item", errs.ErrDomainViolation)
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, err
		}
	}

	order := n.Record()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		rows := make([]model.OrderItem, 0, len(items))
		for i := range items {
			rows = append(rows, *items[i].Record(order.ID))
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return err
		}
		order.Items = rows
		history := &model.OrderStatusHistory{
			OrderID: order.ID,
			Status:  order.Status,
			Notes:   "order placed",
		}
		return tx.Create(history).Error
	})
	if err != nil {
		return nil, errs.Classify(err)
	}
	return order, nil
}

// FindByID finds an order by ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &order, nil
}

// FindByOrderNumber finds an order by its unique human-readable number.
func (r *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &order, nil
}

// ListByCustomerID lists a customer's orders, newest first.
func (r *orderRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return orders, nil
}

// ListByRestaurantID lists a restaurant's orders, newest first.
func (r *orderRepository) ListByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return orders, nil
}

// UpdateStatus moves the order to status and appends the audit row in the
// same transaction. Transition legality is the order service's call; only
// enum membership is checked here.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, note string) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: order status %q is not a declared status", errs.ErrDomainViolation, status)
	}

	var order model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&order).Error; err != nil {
			return err
		}
		order.Status = status
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		history := &model.OrderStatusHistory{
			OrderID: order.ID,
			Status:  status,
			Notes:   note,
		}
		return tx.Create(history).Error
	})
	if err != nil {
		return nil, errs.Classify(err)
	}
	return &order, nil
}

// AssignDriver attaches a driver to the order. Existence is checked with a
// read, not the affected-row count: MySQL reports zero affected rows when the
// update writes an identical value.
func (r *orderRepository) AssignDriver(ctx context.Context, id, driverID uuid.UUID) error {
	var order model.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return errs.Classify(err)
	}
	order.DriverID = &driverID
	return errs.Classify(r.db.WithContext(ctx).Save(&order).Error)
}

// Items lists the order's line items.
func (r *orderRepository) Items(ctx context.Context, id uuid.UUID) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Find(&items).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return items, nil
}

// History lists the order's status transitions in the order they happened.
func (r *orderRepository) History(ctx context.Context, id uuid.UUID) ([]model.OrderStatusHistory, error) {
	var history []model.OrderStatusHistory
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Order("changed_at").
		Find(&history).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return history, nil
}

// Delete removes an order. Line items and status history cascade with the
// row; referenced users, restaurants and menu items are untouched.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id)
	if res.Error != nil {
		return errs.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
