package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe describes how a product (or a specific variant of it) is prepared.
// TotalCost is the sum of every ingredient's prorated cost and is recomputed
// inside the same transaction that writes the ingredient set.
type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          string    `gorm:"index;not null"`
	Name            string    `gorm:"index;not null"`
	Description     *string
	Instructions    *string
	PrepTimeMinutes *int
	ProductID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	VariantID       *uuid.UUID      `gorm:"type:uuid;index"`
	IsActive        bool            `gorm:"not null;default:true"`
	TotalCost       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Product     *Product           `gorm:"foreignKey:ProductID"`
	Variant     *ProductVariant    `gorm:"foreignKey:VariantID"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient links a recipe to one inventory item. The inventory FK is
// RESTRICT on delete: removing a still-referenced inventory item must fail
// with a referential error rather than silently breaking recipe costs.
type RecipeIngredient struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipeID    uuid.UUID       `gorm:"type:uuid;index;not null;uniqueIndex:idx_recipe_ingredients_recipe_inventory"`
	InventoryID uuid.UUID       `gorm:"type:uuid;index;not null;uniqueIndex:idx_recipe_ingredients_recipe_inventory"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Unit        string          `gorm:"not null"`
	Notes       *string
	CreatedAt   time.Time

	Inventory *Inventory `gorm:"foreignKey:InventoryID;constraint:OnDelete:RESTRICT"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }
