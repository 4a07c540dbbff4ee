package repository

import (
	"context"

	"github.com/engrjeff/kapenatinph/internal/model"

	"gorm.io/gorm"
)

// StoreRepository defines data access for the per-user store profile.
type StoreRepository interface {
	FindByUser(ctx context.Context, userID string) (*model.Store, error)
	Update(ctx context.Context, s *model.Store) error

	CreateTx(tx *gorm.DB, s *model.Store) error
	DB() *gorm.DB
}

type storeRepo struct{ db *gorm.DB }

func NewStoreRepository(db *gorm.DB) StoreRepository { return &storeRepo{db: db} }

func (r *storeRepo) FindByUser(ctx context.Context, userID string) (*model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) Update(ctx context.Context, s *model.Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *storeRepo) CreateTx(tx *gorm.DB, s *model.Store) error {
	return tx.Create(s).Error
}

func (r *storeRepo) DB() *gorm.DB { return r.db }
