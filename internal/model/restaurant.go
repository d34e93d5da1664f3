package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
)

// Restaurant is a food vendor owned by one user. The owner reference is a
// non-owning association: the user must outlive the restaurant, so the
// relationship restricts rather than cascades.
type Restaurant struct {
	ID                uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID           uuid.UUID           `json:"owner_id" gorm:"type:char(36);not null;index"`
	Name              string              `json:"name" gorm:"size:255;not null"`
	Description       string              `json:"description,omitempty" gorm:"size:500"`
	CuisineType       string              `json:"cuisine_type,omitempty" gorm:"size:255"`
	Address           string              `json:"address,omitempty" gorm:"size:500"`
	City              string              `json:"city,omitempty" gorm:"size:100"`
	Latitude          decimal.NullDecimal `json:"latitude,omitempty" gorm:"type:decimal(10,8)"`
	Longitude         decimal.NullDecimal `json:"longitude,omitempty" gorm:"type:decimal(11,8)"`
	Phone             string              `json:"phone,omitempty" gorm:"size:20"`
	Email             string              `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Rating            decimal.Decimal     `json:"rating" gorm:"type:decimal(3,2);not null"`
	TotalReviews      int                 `json:"total_reviews" gorm:"not null"`
	IsActive          bool                `json:"is_active" gorm:"not null"`
	IsVerified        bool                `json:"is_verified" gorm:"not null"`
	DeliveryFee       decimal.Decimal     `json:"delivery_fee" gorm:"type:decimal(8,2);not null"`
	MinimumOrder      decimal.Decimal     `json:"minimum_order" gorm:"type:decimal(8,2);not null"`
	EstimatedPrepTime int                 `json:"estimated_prep_time" gorm:"not null"` // minutes
	IsOpen            bool                `json:"is_open" gorm:"not null"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`

	// Relations
	Owner          User           `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	MenuCategories []MenuCategory `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	MenuItems      []MenuItem     `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NewRestaurant is the insert shape for Restaurant.
type NewRestaurant struct {
	OwnerID           uuid.UUID
	Name              string
	Description       string
	CuisineType       string
	Address           string
	City              string
	Latitude          decimal.NullDecimal
	Longitude         decimal.NullDecimal
	Phone             string
	Email             string
	Rating            *decimal.Decimal
	TotalReviews      *int
	IsActive          *bool
	IsVerified        *bool
	DeliveryFee       *decimal.Decimal
	MinimumOrder      *decimal.Decimal
	EstimatedPrepTime *int
	IsOpen            *bool
}

// Validate checks required fields and decimal column precision.
func (n *NewRestaurant) Validate() error {
	if n.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: owner_id is required", errs.ErrDomainViolation)
	}
	if n.Name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrDomainViolation)
	}
	if n.Email == "" {
		return fmt.Errorf("%w: email is required", errs.ErrDomainViolation)
	}
	if err := checkNullScale("latitude", n.Latitude, 10, 8); err != nil {
		return err
	}
	if err := checkNullScale("longitude", n.Longitude, 11, 8); err != nil {
		return err
	}
	if n.Rating != nil {
		if err := checkScale("rating", *n.Rating, 3, 2); err != nil {
			return err
		}
	}
	if n.DeliveryFee != nil {
		if err := checkScale("delivery_fee", *n.DeliveryFee, 8, 2); err != nil {
			return err
		}
	}
	if n.MinimumOrder != nil {
		if err := checkScale("minimum_order", *n.MinimumOrder, 8, 2); err != nil {
			return err
		}
	}
	return nil
}

// Record applies the declared defaults and returns the row to persist.
func (n *NewRestaurant) Record() *Restaurant {
	r := &Restaurant{
		OwnerID:           n.OwnerID,
		Name:              n.Name,
		Description:       n.Description,
		CuisineType:       n.CuisineType,
		Address:           n.Address,
		City:              n.City,
		Latitude:          n.Latitude,
		Longitude:         n.Longitude,
		Phone:             n.Phone,
		Email:             n.Email,
		Rating:            decimal.Zero,
		TotalReviews:      0,
		IsActive:          true,
		IsVerified:        false,
		DeliveryFee:       decimal.NewFromFloat(3.00),
		MinimumOrder:      decimal.NewFromFloat(1.00),
		EstimatedPrepTime: 10,
		IsOpen:            true,
	}
	if n.Rating != nil {
		r.Rating = *n.Rating
	}
	if n.TotalReviews != nil {
		r.TotalReviews = *n.TotalReviews
	}
	if n.IsActive != nil {
		r.IsActive = *n.IsActive
	}
	if n.IsVerified != nil {
		r.IsVerified = *n.IsVerified
	}
	if n.DeliveryFee != nil {
		r.DeliveryFee = *n.DeliveryFee
	}
	if n.MinimumOrder != nil {
		r.MinimumOrder = *n.MinimumOrder
	}
	if n.EstimatedPrepTime != nil {
		r.EstimatedPrepTime = *n.EstimatedPrepTime
	}
	if n.IsOpen != nil {
		r.IsOpen = *n.IsOpen
	}
	return r
}
