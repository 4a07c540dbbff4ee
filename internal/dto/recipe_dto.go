package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecipeIngredientInput struct {
	InventoryID string          `json:"inventoryId" validate:"required,uuid"`
	Quantity    decimal.Decimal `json:"quantity"    validate:"required,gt=0"`
	Unit        string          `json:"unit"`
	Notes       *string         `json:"notes" validate:"omitempty,max=200"`
}

// CreateRecipeRequest requires at least two ingredients, each referencing a
// distinct inventory item.
type CreateRecipeRequest struct {
	Name            string                  `json:"name"            validate:"required,min=1,max=100"`
	Description     *string                 `json:"description"     validate:"omitempty,max=500"`
	Instructions    *string                 `json:"instructions"    validate:"omitempty,max=1000"`
	PrepTimeMinutes *int                    `json:"prepTimeMinutes" validate:"omitempty,min=0"`
	ProductID       string                  `json:"productId"       validate:"required,uuid"`
	VariantID       *string                 `json:"variantId"       validate:"omitempty,uuid"`
	IsActive        bool                    `json:"isActive"`
	Ingredients     []RecipeIngredientInput `json:"ingredients"     validate:"required,min=2,dive"`
}

type UpdateRecipeRequest struct {
	CreateRecipeRequest
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type RecipeFilter struct {
	Search    string `form:"search"`
	ProductID string `form:"productId" validate:"omitempty,uuid"`
	VariantID string `form:"variantId" validate:"omitempty,uuid"`
	Active    string `form:"active"` // "", "true", "false"
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RecipeIngredientResponse struct {
	ID            string          `json:"id"`
	InventoryID   string          `json:"inventoryId"`
	InventoryName string          `json:"inventoryName,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	Notes         *string         `json:"notes"`
	Cost          decimal.Decimal `json:"cost"`
}

type RecipeResponse struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	Description     *string                    `json:"description"`
	Instructions    *string                    `json:"instructions"`
	PrepTimeMinutes *int                       `json:"prepTimeMinutes"`
	ProductID       string                     `json:"productId"`
	ProductName     string                     `json:"productName,omitempty"`
	VariantID       *string                    `json:"variantId"`
	VariantTitle    string                     `json:"variantTitle,omitempty"`
	IsActive        bool                       `json:"isActive"`
	TotalCost       decimal.Decimal            `json:"totalCost"`
	Ingredients     []RecipeIngredientResponse `json:"ingredients"`
}

type RecipeListResponse struct {
	PageInfo PageInfo         `json:"pageInfo"`
	Data     []RecipeResponse `json:"data"`
}
