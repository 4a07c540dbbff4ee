package repository

import (
	"context"

	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines data access for products and their nested
// option/value/variant collections. The *Tx methods run inside a caller-held
// transaction: the three-level reconcile on product update must be
// all-or-nothing, so the service opens the transaction and passes it down.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, userID string, filter dto.ProductFilter) ([]model.Product, int64, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	UpdateProductTx(tx *gorm.DB, p *model.Product) error

	CreateOptionTx(tx *gorm.DB, opt *model.ProductVariantOption) error
	UpdateOptionTx(tx *gorm.DB, opt *model.ProductVariantOption) error
	DeleteOptionsTx(tx *gorm.DB, ids []uuid.UUID) error

	CreateValueTx(tx *gorm.DB, v *model.ProductVariantOptionValue) error
	UpdateValueTx(tx *gorm.DB, v *model.ProductVariantOptionValue) error
	DeleteValuesTx(tx *gorm.DB, ids []uuid.UUID) error

	CreateVariantTx(tx *gorm.DB, v *model.ProductVariant) error
	UpdateVariantTx(tx *gorm.DB, v *model.ProductVariant) error
	DeleteVariantsTx(tx *gorm.DB, ids []uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	// Nested options/values/variants are persisted through GORM's association
	// writer in one implicit transaction.
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Category").
		Preload("VariantOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("VariantOptions.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("title ASC")
		}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, userID string, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("user_id = ?", userID)

	// Active filter: "false" = inactive only, "all" = everything, default = active
	switch filter.Active {
	case "false":
		q = q.Where("is_active = false")
	case "all":
		// no filter
	default:
		q = q.Where("is_active = true")
	}

	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.
		Preload("Category").
		Preload("VariantOptions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("VariantOptions.Values", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("title ASC") }).
		Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	// Options, values and variants cascade at the DB level.
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) UpdateProductTx(tx *gorm.DB, p *model.Product) error {
	// Scalar columns only — nested collections are reconciled explicitly by
	// the service; Save would try to re-write them wholesale.
	return tx.Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":         p.Name,
		"description":  p.Description,
		"category_id":  p.CategoryID,
		"sku":          p.SKU,
		"base_price":   p.BasePrice,
		"is_active":    p.IsActive,
		"has_variants": p.HasVariants,
	}).Error
}

func (r *productRepo) CreateOptionTx(tx *gorm.DB, opt *model.ProductVariantOption) error {
	return tx.Create(opt).Error
}

func (r *productRepo) UpdateOptionTx(tx *gorm.DB, opt *model.ProductVariantOption) error {
	return tx.Model(&model.ProductVariantOption{}).Where("id = ?", opt.ID).Updates(map[string]interface{}{
		"name":     opt.Name,
		"position": opt.Position,
	}).Error
}

func (r *productRepo) DeleteOptionsTx(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Delete(&model.ProductVariantOption{}, "id IN ?", ids).Error
}

func (r *productRepo) CreateValueTx(tx *gorm.DB, v *model.ProductVariantOptionValue) error {
	return tx.Create(v).Error
}

func (r *productRepo) UpdateValueTx(tx *gorm.DB, v *model.ProductVariantOptionValue) error {
	return tx.Model(&model.ProductVariantOptionValue{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"value":    v.Value,
		"position": v.Position,
	}).Error
}

func (r *productRepo) DeleteValuesTx(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Delete(&model.ProductVariantOptionValue{}, "id IN ?", ids).Error
}

func (r *productRepo) CreateVariantTx(tx *gorm.DB, v *model.ProductVariant) error {
	return tx.Create(v).Error
}

func (r *productRepo) UpdateVariantTx(tx *gorm.DB, v *model.ProductVariant) error {
	return tx.Model(&model.ProductVariant{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"title":        v.Title,
		"sku":          v.SKU,
		"price":        v.Price,
		"is_default":   v.IsDefault,
		"is_available": v.IsAvailable,
	}).Error
}

func (r *productRepo) DeleteVariantsTx(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Delete(&model.ProductVariant{}, "id IN ?", ids).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
