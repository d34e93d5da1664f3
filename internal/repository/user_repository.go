package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Insert(ctx context.Context, n *model.NewUser) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Insert validates the insert shape, applies defaults and creates the row.
func (r *userRepository) Insert(ctx context.Context, n *model.NewUser) (*model.User, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	user := n.Record()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return user, nil
}

// Update saves an existing user. The updated_at column is refreshed by GORM.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	if !user.Role.Valid() {
		return fmt.Errorf("%w: role %q is not a declared role", errs.ErrDomainViolation, user.Role)
	}
	if !user.Status.Valid() {
		return fmt.Errorf("%w: status %q is not a declared status", errs.ErrDomainViolation, user.Status)
	}
	return errs.Classify(r.db.WithContext(ctx).Save(user).Error)
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &user, nil
}

// FindByEmail finds a user by its unique email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &user, nil
}

// List lists all users.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return users, nil
}

// Delete removes a user. Sessions cascade with the row; the delete fails if
// orders or restaurants still reference the user.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return errs.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
