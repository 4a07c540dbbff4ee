package repository

import (
	"context"

	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecipeRepository defines data access for recipes and their ingredient
// sets. Ingredient writes happen inside the service-held transaction so the
// cost rollup and the ingredient rows always commit together.
type RecipeRepository interface {
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Recipe, error)
	List(ctx context.Context, userID string, filter dto.RecipeFilter) ([]model.Recipe, int64, error)
	ListByProduct(ctx context.Context, userID string, productID uuid.UUID) ([]model.Recipe, error)
	ListByVariant(ctx context.Context, userID string, variantID uuid.UUID) ([]model.Recipe, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	CreateTx(tx *gorm.DB, rec *model.Recipe) error
	UpdateTx(tx *gorm.DB, rec *model.Recipe) error
	DeleteIngredientsTx(tx *gorm.DB, recipeID uuid.UUID) error
	CreateIngredientTx(tx *gorm.DB, ing *model.RecipeIngredient) error
	SetTotalCostTx(tx *gorm.DB, recipeID uuid.UUID, total decimal.Decimal) error

	DB() *gorm.DB
}

type recipeRepo struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository { return &recipeRepo{db: db} }

func (r *recipeRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Product").
		Preload("Variant").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Ingredients.Inventory").
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) List(ctx context.Context, userID string, filter dto.RecipeFilter) ([]model.Recipe, int64, error) {
	var recipes []model.Recipe
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Recipe{}).Where("user_id = ?", userID)
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.VariantID != "" {
		q = q.Where("variant_id = ?", filter.VariantID)
	}
	switch filter.Active {
	case "true":
		q = q.Where("is_active = true")
	case "false":
		q = q.Where("is_active = false")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.
		Preload("Product").
		Preload("Variant").
		Preload("Ingredients").
		Preload("Ingredients.Inventory").
		Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&recipes).Error
	return recipes, total, err
}

func (r *recipeRepo) ListByProduct(ctx context.Context, userID string, productID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND is_active = true", userID, productID).
		Preload("Ingredients").
		Preload("Ingredients.Inventory").
		Order("name ASC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) ListByVariant(ctx context.Context, userID string, variantID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND variant_id = ? AND is_active = true", userID, variantID).
		Preload("Ingredients").
		Preload("Ingredients.Inventory").
		Order("name ASC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepo) CreateTx(tx *gorm.DB, rec *model.Recipe) error {
	return tx.Create(rec).Error
}

func (r *recipeRepo) UpdateTx(tx *gorm.DB, rec *model.Recipe) error {
	return tx.Model(&model.Recipe{}).Where("id = ?", rec.ID).Updates(map[string]interface{}{
		"name":              rec.Name,
		"description":       rec.Description,
		"instructions":      rec.Instructions,
		"prep_time_minutes": rec.PrepTimeMinutes,
		"product_id":        rec.ProductID,
		"variant_id":        rec.VariantID,
		"is_active":         rec.IsActive,
	}).Error
}

func (r *recipeRepo) DeleteIngredientsTx(tx *gorm.DB, recipeID uuid.UUID) error {
	return tx.Delete(&model.RecipeIngredient{}, "recipe_id = ?", recipeID).Error
}

func (r *recipeRepo) CreateIngredientTx(tx *gorm.DB, ing *model.RecipeIngredient) error {
	return tx.Create(ing).Error
}

func (r *recipeRepo) SetTotalCostTx(tx *gorm.DB, recipeID uuid.UUID, total decimal.Decimal) error {
	return tx.Model(&model.Recipe{}).Where("id = ?", recipeID).Update("total_cost", total).Error
}

func (r *recipeRepo) DB() *gorm.DB { return r.db }
