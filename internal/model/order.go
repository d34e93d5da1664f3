package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the declared order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer's purchase from one restaurant. Its references to the
// customer, restaurant and driver are non-owning: those rows must not be
// deletable while the order exists.
type Order struct {
	ID                    uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderNumber           string          `json:"order_number" gorm:"uniqueIndex;size:20;not null"`
	CustomerID            uuid.UUID       `json:"customer_id" gorm:"type:char(36);not null;index"`
	RestaurantID          uuid.UUID       `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	DriverID              *uuid.UUID      `json:"driver_id,omitempty" gorm:"type:char(36);index"`
	Status                OrderStatus     `json:"status" gorm:"column:order_status;type:varchar(20);not null;check:order_status IN ('pending','confirmed','preparing','ready','picked_up','delivered','cancelled')"`
	Subtotal              decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2);not null"`
	TotalAmount           decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	DeliveryAddress       string          `json:"delivery_address" gorm:"size:500;not null"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time      `json:"actual_delivery_time,omitempty"`
	CreatedAt             time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt             time.Time       `json:"updated_at" gorm:"not null"`

	// Relations
	Customer      User                 `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Restaurant    Restaurant           `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:RESTRICT"`
	Driver        *User                `json:"-" gorm:"foreignKey:DriverID;constraint:OnDelete:RESTRICT"`
	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// NewOrder is the insert shape for Order.
type NewOrder struct {
	OrderNumber           string
	CustomerID            uuid.UUID
	RestaurantID          uuid.UUID
	DriverID              *uuid.UUID
	Status                *OrderStatus
	Subtotal              decimal.Decimal
	DeliveryFee           *decimal.Decimal
	TotalAmount           decimal.Decimal
	DeliveryAddress       string
	EstimatedDeliveryTime *time.Time
}

// Validate checks required fields, enum membership and decimal precision.
func (n *NewOrder) Validate() error {
	if n.OrderNumber == "" {
		return fmt.Errorf("%w: order_number is required", errs.ErrDomainViolation)
	}
	if len(n.OrderNumber) > 20 {
		return fmt.Errorf("%w: order_number exceeds 20 characters", errs.ErrDomainViolation)
	}
	if n.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customer_id is required", errs.ErrDomainViolation)
	}
	if n.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurant_id is required", errs.ErrDomainViolation)
	}
	if n.DeliveryAddress == "" {
		return fmt.Errorf("%w: delivery_address is required", errs.ErrDomainViolation)
	}
	if n.Status != nil && !n.Status.Valid() {
		return fmt.Errorf("%w: order status %q is not a declared status", errs.ErrDomainViolation, *n.Status)
	}
	if err := checkScale("subtotal", n.Subtotal, 10, 2); err != nil {
		return err
	}
	if n.DeliveryFee != nil {
		if err := checkScale("delivery_fee", *n.DeliveryFee, 10, 2); err != nil {
			return err
		}
	}
	return checkScale("total_amount", n.TotalAmount, 10, 2)
}

// Record applies the declared defaults and returns the row to persist.
func (n *NewOrder) Record() *Order {
	o := &Order{
		OrderNumber:           n.OrderNumber,
		CustomerID:            n.CustomerID,
		RestaurantID:          n.RestaurantID,
		DriverID:              n.DriverID,
		Status:                OrderStatusPending,
		Subtotal:              n.Subtotal,
		DeliveryFee:           decimal.Zero,
		TotalAmount:           n.TotalAmount,
		DeliveryAddress:       n.DeliveryAddress,
		EstimatedDeliveryTime: n.EstimatedDeliveryTime,
	}
	if n.Status != nil {
		o.Status = *n.Status
	}
	if n.DeliveryFee != nil {
		o.DeliveryFee = *n.DeliveryFee
	}
	return o
}
