package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategory groups products and inventory items. Each user owns their
// own category list; names are unique within a user's account.
type ProductCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      string    `gorm:"index;not null;uniqueIndex:idx_categories_user_name"`
	Name        string    `gorm:"not null;uniqueIndex:idx_categories_user_name"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductCategory) TableName() string { return "product_categories" }
