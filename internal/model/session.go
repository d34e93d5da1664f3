package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
)

// UserSession is a login session owned by exactly one user. Sessions share
// the user's lifetime: deleting the user cascades to its sessions. Expiry is
// advisory data; this layer never sweeps it in the background.
type UserSession struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;index"`
	TokenHash string     `json:"-" gorm:"size:255"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *UserSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// NewUserSession is the insert shape for UserSession.
type NewUserSession struct {
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt *time.Time
}

// Validate checks required fields.
func (n *NewUserSession) Validate() error {
	if n.UserID == uuid.Nil {
		return fmt.Errorf("%w: user_id is required", errs.ErrDomainViolation)
	}
	return nil
}

// Record returns the row to persist.
func (n *NewUserSession) Record() *UserSession {
	return &UserSession{
		UserID:    n.UserID,
		TokenHash: n.TokenHash,
		ExpiresAt: n.ExpiresAt,
	}
}
