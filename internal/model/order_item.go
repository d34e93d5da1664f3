package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
)

// OrderItem is one line of an order. The item name and unit price are
// snapshots taken at order time, so renaming or repricing a menu item later
// never alters historical orders.
type OrderItem struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID      uuid.UUID       `json:"order_id" gorm:"type:char(36);not null;index"`
	MenuItemID   uuid.UUID       `json:"menu_item_id" gorm:"type:char(36);not null;index"`
	MenuItemName string          `json:"menu_item_name" gorm:"size:255;not null"`
	Quantity     int             `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time       `json:"created_at" gorm:"not null"`

	// Relations
	Order    Order    `json:"-" gorm:"foreignKey:OrderID"`
	MenuItem MenuItem `json:"-" gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
}

// BeforeCreate sets UUID before creating the record.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// NewOrderItem is the insert shape for OrderItem. The line total is not
// accepted from the caller: it is derived as quantity times unit price so the
// invariant holds by construction.
type NewOrderItem struct {
	MenuItemID   uuid.UUID
	MenuItemName string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// Validate checks required fields, quantity positivity and price precision.
func (n *NewOrderItem) Validate() error {
	if n.MenuItemID == uuid.Nil {
		return fmt.Errorf("%w: menu_item_id is required", errs.ErrDomainViolation)
	}
	if n.MenuItemName == "" {
		return fmt.Errorf("%w: menu_item_name is required", errs.ErrDomainViolation)
	}
	if n.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", errs.ErrDomainViolation)
	}
	if err := checkScale("unit_price", n.UnitPrice, 10, 2); err != nil {
		return err
	}
	return checkScale("total_price", n.TotalPrice(), 10, 2)
}

// TotalPrice is the computed line total at time of order.
func (n *NewOrderItem) TotalPrice() decimal.Decimal {
	return n.UnitPrice.Mul(decimal.NewFromInt(int64(n.Quantity)))
}

// Record computes the line total and returns the row to persist. OrderID is
// assigned by the order repository inside the insert transaction.
func (n *NewOrderItem) Record(orderID uuid.UUID) *OrderItem {
	return &OrderItem{
		OrderID:      orderID,
		MenuItemID:   n.MenuItemID,
		MenuItemName: n.MenuItemName,
		Quantity:     n.Quantity,
		UnitPrice:    n.UnitPrice,
		TotalPrice:   n.TotalPrice(),
	}
}
