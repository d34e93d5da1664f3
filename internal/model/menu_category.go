package model

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
)

// MenuCategory groups menu items for display. Categories are owned by their
// restaurant and cascade-deleted with it.
type MenuCategory struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID uuid.UUID `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Description  string    `json:"description,omitempty" gorm:"size:500"`
	SortOrder    int       `json:"sort_order" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"not null"`

	// Relations
	Restaurant Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`
	Items      []MenuItem `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (c *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// NewMenuCategory is the insert shape for MenuCategory.
type NewMenuCategory struct {
	RestaurantID uuid.UUID
	Name         string
	Description  string
	SortOrder    *int
	IsActive     *bool
}

// Validate checks required fields.
func (n *NewMenuCategory) Validate() error {
	if n.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurant_id is required", errs.ErrDomainViolation)
	}
	if n.Name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrDomainViolation)
	}
	return nil
}

// Record applies the declared defaults and returns the row to persist.
func (n *NewMenuCategory) Record() *MenuCategory {
	c := &MenuCategory{
		RestaurantID: n.RestaurantID,
		Name:         n.Name,
		Description:  n.Description,
		SortOrder:    0,
		IsActive:     true,
	}
	if n.SortOrder != nil {
		c.SortOrder = *n.SortOrder
	}
	if n.IsActive != nil {
		c.IsActive = *n.IsActive
	}
	return c
}
