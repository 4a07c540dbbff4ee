package repository

import (
	"context"

	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryRepository defines data access for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *model.Inventory) error
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Inventory, error)
	// FindByIDTx is used inside recipe cost transactions.
	FindByIDTx(tx *gorm.DB, userID string, id uuid.UUID) (*model.Inventory, error)
	List(ctx context.Context, userID string, filter dto.InventoryFilter) ([]model.Inventory, int64, error)
	ListAll(ctx context.Context, userID string) ([]model.Inventory, error)
	Update(ctx context.Context, item *model.Inventory) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	CountByStatus(ctx context.Context, userID string, status model.InventoryStatus) (int64, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, item *model.Inventory) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Inventory, error) {
	var item model.Inventory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Category").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) FindByIDTx(tx *gorm.DB, userID string, id uuid.UUID) (*model.Inventory, error) {
	var item model.Inventory
	err := tx.Where("user_id = ?", userID).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) List(ctx context.Context, userID string, filter dto.InventoryFilter) ([]model.Inventory, int64, error) {
	var items []model.Inventory
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Inventory{}).Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Category").Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *inventoryRepo) ListAll(ctx context.Context, userID string) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) Update(ctx context.Context, item *model.Inventory) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Inventory{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inventoryRepo) CountByStatus(ctx context.Context, userID string, status model.InventoryStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Inventory{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}
