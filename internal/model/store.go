package model

import (
	"time"

	"github.com/google/uuid"
)

// Store is the shop profile created during onboarding. One per user.
type Store struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	Address   *string
	Phone     *string
	Currency  string `gorm:"not null;default:'PHP'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Store) TableName() string { return "stores" }
