package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
)

// Role classifies what a user is allowed to do on the platform.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleDriver          Role = "driver"
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleAdmin           Role = "admin"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleRestaurantOwner, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// Valid reports whether s is one of the declared statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

// User represents a platform account: customer, driver, restaurant owner or admin.
type User struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	FullName  string     `json:"full_name" gorm:"size:255;not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string     `json:"-" gorm:"size:255;not null"` // Opaque credential, hashed by the caller
	Phone     string     `json:"phone,omitempty" gorm:"size:50"`
	Role      Role       `json:"role" gorm:"size:50;not null;check:role IN ('customer','driver','restaurant_owner','admin')"`
	Status    UserStatus `json:"status" gorm:"size:50;not null;check:status IN ('active','inactive','suspended')"`
	Address   string     `json:"address,omitempty" gorm:"size:500"`
	City      string     `json:"city,omitempty" gorm:"size:255"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Sessions []UserSession `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// NewUser is the insert shape for User: server-generated fields are omitted
// and defaulted columns are optional.
type NewUser struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Role     *Role
	Status   *UserStatus
	Address  string
	City     string
}

// Validate checks required fields and enum membership.
func (n *NewUser) Validate() error {
	if n.FullName == "" {
		return fmt.Errorf("%w: full_name is required", errs.ErrDomainViolation)
	}
	if n.Email == "" {
		return fmt.Errorf("%w: email is required", errs.ErrDomainViolation)
	}
	if n.Password == "" {
		return fmt.Errorf("%w: password is required", errs.ErrDomainViolation)
	}
	if n.Role != nil && !n.Role.Valid() {
		return fmt.Errorf("%w: role %q is not a declared role", errs.ErrDomainViolation, *n.Role)
	}
	if n.Status != nil && !n.Status.Valid() {
		return fmt.Errorf("%w: status %q is not a declared status", errs.ErrDomainViolation, *n.Status)
	}
	return nil
}

// Record applies the declared defaults and returns the row to persist.
// Defaults are applied exactly once, here, never retroactively.
func (n *NewUser) Record() *User {
	u := &User{
		FullName: n.FullName,
		Email:    n.Email,
		Password: n.Password,
		Phone:    n.Phone,
		Role:     RoleCustomer,
		Status:   UserStatusActive,
		Address:  n.Address,
		City:     n.City,
	}
	if n.Role != nil {
		u.Role = *n.Role
	}
	if n.Status != nil {
		u.Status = *n.Status
	}
	return u
}
