package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
)

// MenuItem is a sellable dish. Items are owned by both their restaurant and
// their category and cascade-deleted with either.
type MenuItem struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID    uuid.UUID       `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	CategoryID      uuid.UUID       `json:"category_id" gorm:"type:char(36);not null;index"`
	Name            string          `json:"name" gorm:"size:255;not null"`
	Description     string          `json:"description,omitempty" gorm:"size:500"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(8,2);not null"`
	IsAvailable     bool            `json:"is_available" gorm:"not null"`
	PreparationTime int             `json:"preparation_time" gorm:"not null"` // minutes
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relations
	Restaurant Restaurant   `json:"-" gorm:"foreignKey:RestaurantID"`
	Category   MenuCategory `json:"-" gorm:"foreignKey:CategoryID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// NewMenuItem is the insert shape for MenuItem.
type NewMenuItem struct {
	RestaurantID    uuid.UUID
	CategoryID      uuid.UUID
	Name            string
	Description     string
	Price           decimal.Decimal
	IsAvailable     *bool
	PreparationTime *int
}

// Validate checks required fields and price precision.
func (n *NewMenuItem) Validate() error {
	if n.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurant_id is required", errs.ErrDomainViolation)
	}
	if n.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: category_id is required", errs.ErrDomainViolation)
	}
	if n.Name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrDomainViolation)
	}
	return checkScale("price", n.Price, 8, 2)
}

// Record applies the declared defaults and returns the row to persist.
func (n *NewMenuItem) Record() *MenuItem {
	m := &MenuItem{
		RestaurantID:    n.RestaurantID,
		CategoryID:      n.CategoryID,
		Name:            n.Name,
		Description:     n.Description,
		Price:           n.Price,
		IsAvailable:     true,
		PreparationTime: 5,
	}
	if n.IsAvailable != nil {
		m.IsAvailable = *n.IsAvailable
	}
	if n.PreparationTime != nil {
		m.PreparationTime = *n.PreparationTime
	}
	return m
}
