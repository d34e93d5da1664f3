package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
)

// SessionRepository defines user session persistence operations. Sessions are
// created at login and destroyed on logout, expiry purge, or user deletion
// (cascade). Expiry itself is advisory: nothing here runs in the background.
type SessionRepository interface {
	Insert(ctx context.Context, n *model.NewUserSession) (*model.UserSession, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserSession, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.UserSession, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository builds a GORM-backed repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Insert validates the insert shape and creates the row.
func (r *sessionRepository) Insert(ctx context.Context, n *model.NewUserSession) (*model.UserSession, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	session := n.Record()
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return session, nil
}

// FindByID finds a session by ID.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserSession, error) {
	var session model.UserSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &session, nil
}

// FindByTokenHash finds a session by its hashed token.
func (r *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.UserSession, error) {
	var session model.UserSession
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&session).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &session, nil
}

// ListByUserID lists all sessions belonging to a user.
func (r *sessionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.UserSession, error) {
	var sessions []model.UserSession
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return sessions, nil
}

// Delete removes one session (logout).
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.UserSession{}, "id = ?", id)
	if res.Error != nil {
		return errs.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteByUserID removes every session of a user (logout everywhere).
func (r *sessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserSession{})
	return res.RowsAffected, errs.Classify(res.Error)
}

// DeleteExpired purges sessions whose expiry is before now. Callers decide
// when to invoke it; sessions without an expiry are never purged.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&model.UserSession{})
	return res.RowsAffected, errs.Classify(res.Error)
}
