package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatusHistory records one status transition of an order. The trail is
// append-only: rows are never updated or deleted except via cascade from the
// order itself.
type OrderStatusHistory struct {
	ID        uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID   uuid.UUID   `json:"order_id" gorm:"type:char(36);not null;index"`
	Status    OrderStatus `json:"status" gorm:"column:order_status;type:varchar(20);not null;check:order_status IN ('pending','confirmed','preparing','ready','picked_up','delivered','cancelled')"`
	ChangedAt time.Time   `json:"changed_at" gorm:"not null"`
	Notes     string      `json:"notes,omitempty" gorm:"type:text"`

	// Relations
	Order Order `json:"-" gorm:"foreignKey:OrderID"`
}

// TableName keeps the audit table singular.
func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}

// BeforeCreate sets UUID and the transition timestamp before creating the record.
func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now()
	}
	return nil
}
