package repository

import (
	"context"

	"github.com/engrjeff/kapenatinph/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository defines the data access contract for product categories.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.ProductCategory) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.ProductCategory, error)
	FindByName(ctx context.Context, userID, name string) (*model.ProductCategory, error)
	List(ctx context.Context, userID string) ([]model.ProductCategory, error)
	Update(ctx context.Context, c *model.ProductCategory) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	// CreateManyTx inserts a batch inside an existing transaction (onboarding).
	CreateManyTx(tx *gorm.DB, categories []model.ProductCategory) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.ProductCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.ProductCategory, error) {
	var c model.ProductCategory
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindByName(ctx context.Context, userID, name string) (*model.ProductCategory, error) {
	var c model.ProductCategory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context, userID string) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.ProductCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ProductCategory{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepo) CreateManyTx(tx *gorm.DB, categories []model.ProductCategory) error {
	return tx.Create(&categories).Error
}
