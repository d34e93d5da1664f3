package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "dishpatch/internal/errors"
	"dishpatch/internal/model"
)

// MenuCategoryRepository defines menu category persistence operations.
type MenuCategoryRepository interface {
	Insert(ctx context.Context, n *model.NewMenuCategory) (*model.MenuCategory, error)
	Update(ctx context.Context, category *model.MenuCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MenuCategory, error)
	ListByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuCategoryRepository struct {
	db *gorm.DB
}

// NewMenuCategoryRepository builds a GORM-backed repository.
func NewMenuCategoryRepository(db *gorm.DB) MenuCategoryRepository {
	return &menuCategoryRepository{db: db}
}

// Insert validates the insert shape, applies defaults and creates the row.
func (r *menuCategoryRepository) Insert(ctx context.Context, n *model.NewMenuCategory) (*model.MenuCategory, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	category := n.Record()
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return category, nil
}

// Update saves an existing category.
func (r *menuCategoryRepository) Update(ctx context.Context, category *model.MenuCategory) error {
	return errs.Classify(r.db.WithContext(ctx).Save(category).Error)
}

// FindByID finds a category by ID.
func (r *menuCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuCategory, error) {
	var category model.MenuCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &category, nil
}

// ListByRestaurantID lists a restaurant's categories in display order.
func (r *menuCategoryRepository) ListByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("sort_order").
		Find(&categories).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return categories, nil
}

// Delete removes a category. Its menu items cascade with the row.
func (r *menuCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuCategory{}, "id = ?", id)
	if res.Error != nil {
		return errs.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// MenuItemRepository defines menu item persistence operations.
type MenuItemRepository interface {
	Insert(ctx context.Context, n *model.NewMenuItem) (*model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	ListByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error)
	ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]model.MenuItem, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository builds a GORM-backed repository.
func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

// Insert validates the insert shape, applies defaults and creates the row.
func (r *menuItemRepository) Insert(ctx context.Context, n *model.NewMenuItem) (*model.MenuItem, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	item := n.Record()
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return item, nil
}

// Update saves an existing item.
func (r *menuItemRepository) Update(ctx context.Context, item *model.MenuItem) error {
	return errs.Classify(r.db.WithContext(ctx).Save(item).Error)
}

// FindByID finds an item by ID.
func (r *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return &item, nil
}

// ListByRestaurantID lists every item on a restaurant's menu.
func (r *menuItemRepository) ListByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Find(&items).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return items, nil
}

// ListByCategoryID lists the items of one category.
func (r *menuItemRepository) ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&items).Error; err != nil {
		return nil, errs.Classify(err)
	}
	return items, nil
}

// SetAvailability flips the availability flag of one item. Existence is
// checked with a read, not the affected-row count: MySQL reports zero
// affected rows when the update writes an identical value.
func (r *menuItemRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return errs.Classify(err)
	}
	item.IsAvailable = available
	return errs.Classify(r.db.WithContext(ctx).Save(&item).Error)
}

// Delete removes an item. The delete fails while order items still reference
// it; historical orders keep their own name and price snapshots.
func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return errs.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
