package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
)

// RestaurantRepository defines restaurant persistence operations.
type RestaurantRepository interface {
	Insert(ctx context.Context, n *model.NewRestaurant) (*model.Restaurant, error)
	Update(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	FindByEmail(ctx context.Context, email string) (*model.Restaurant, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Restaurant, error)
	ListOpen(ctx context.Context) ([]model.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository builds a GORM-backed repository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Insert validates the insert shape, applies defaults and creates the row.
func (r *restaurantRepository) Insert(ctx context.Context, n *model.NewRestaurant) (*model.Restaurant, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	restaurant := n.Record()
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return restaurant, nil
}

// Update saves an existing restaurant.
func (r *restaurantRepository) Update(ctx context.Context, restaurant *model.Restaurant) error {
	return errs.Classify(r.db.WithContext(ctx).Save(restaurant).Error)
}

// FindByID finds a restaurant by ID.
func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &restaurant, nil
}

// FindByEmail finds a restaurant by its unique email.
func (r *restaurantRepository) FindByEmail(ctx context.Context, email string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&restaurant).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &restaurant, nil
}

// ListByOwnerID lists every restaurant owned by a user.
func (r *restaurantRepository) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&restaurants).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return restaurants, nil
}

// ListOpen lists restaurants currently accepting orders.
func (r *restaurantRepository) ListOpen(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).
		Where("is_open = ? AND is_active = ?", true, true).
		Find(&restaurants).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return restaurants, nil
}

// Delete removes a restaurant. Menu categories and items cascade with the
// row in the same atomic operation; the delete fails if orders still
// reference the restaurant.
func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Restaurant{}, "id = ?", id)
	if res.Error != nil {
		return errs.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
