package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// VariantOptionValueInput carries an optional ID: present means "update this
// persisted value", absent means "create".
type VariantOptionValueInput struct {
	ID       *string `json:"id"       validate:"omitempty,uuid"`
	Value    string  `json:"value"    validate:"required,min=1"`
	Position int     `json:"position" validate:"min=0"`
}

// VariantOptionInput requires at least two values per option.
type VariantOptionInput struct {
	ID       *string                   `json:"id"       validate:"omitempty,uuid"`
	Name     string                    `json:"name"     validate:"required,min=1,max=60"`
	Position int                       `json:"position" validate:"min=0"`
	Values   []VariantOptionValueInput `json:"values"   validate:"required,min=2,dive"`
}

type VariantInput struct {
	ID          *string         `json:"id"           validate:"omitempty,uuid"`
	Title       string          `json:"title"        validate:"required,min=1"`
	SKU         string          `json:"sku"          validate:"required,min=1"`
	Price       decimal.Decimal `json:"price"        validate:"min=0"`
	IsDefault   bool            `json:"isDefault"`
	IsAvailable bool            `json:"isAvailable"`
}

type CreateProductRequest struct {
	Name           string               `json:"name"        validate:"required,min=1,max=120"`
	Description    *string              `json:"description" validate:"omitempty,max=1000"`
	CategoryID     string               `json:"categoryId"  validate:"required,uuid"`
	SKU            string               `json:"sku"         validate:"required,min=1"`
	BasePrice      decimal.Decimal      `json:"basePrice"   validate:"required,gt=0"`
	IsActive       bool                 `json:"isActive"`
	HasVariants    bool                 `json:"hasVariants"`
	VariantOptions []VariantOptionInput `json:"variantOptions" validate:"dive"`
	Variants       []VariantInput       `json:"variants"       validate:"dive"`
}

// UpdateProductRequest has full-replace semantics for the nested option,
// value and variant collections; records keep their identity through the
// optional IDs.
type UpdateProductRequest struct {
	CreateProductRequest
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Search     string `form:"search"`
	CategoryID string `form:"categoryId" validate:"omitempty,uuid"`
	Active     string `form:"active"` // "", "true", "false", "all"
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VariantOptionValueResponse struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Position int    `json:"position"`
}

type VariantOptionResponse struct {
	ID       string                       `json:"id"`
	Name     string                       `json:"name"`
	Position int                          `json:"position"`
	Values   []VariantOptionValueResponse `json:"values"`
}

type VariantResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	IsDefault   bool            `json:"isDefault"`
	IsAvailable bool            `json:"isAvailable"`
}

type ProductResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    *string                 `json:"description"`
	CategoryID     string                  `json:"categoryId"`
	CategoryName   string                  `json:"categoryName,omitempty"`
	SKU            string                  `json:"sku"`
	BasePrice      decimal.Decimal         `json:"basePrice"`
	IsActive       bool                    `json:"isActive"`
	HasVariants    bool                    `json:"hasVariants"`
	VariantOptions []VariantOptionResponse `json:"variantOptions"`
	Variants       []VariantResponse       `json:"variants"`
}

type ProductListResponse struct {
	PageInfo PageInfo          `json:"pageInfo"`
	Data     []ProductResponse `json:"data"`
}
