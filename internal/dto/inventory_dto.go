package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AmountPerUnit must be strictly positive: it is the divisor in the recipe
// cost derivation and a zero would otherwise fail there instead of here.
type CreateInventoryRequest struct {
	SKU           string          `json:"sku"           validate:"required,min=1"`
	Name          string          `json:"name"          validate:"required,min=1,max=120"`
	Description   *string         `json:"description"   validate:"omitempty,max=200"`
	CategoryID    string          `json:"categoryId"    validate:"required,uuid"`
	OrderUnit     string          `json:"orderUnit"     validate:"required,min=1"`
	Unit          string          `json:"unit"          validate:"required,min=1"`
	Quantity      int             `json:"quantity"      validate:"min=0"`
	ReorderLevel  int             `json:"reorderLevel"  validate:"min=0"`
	UnitPrice     decimal.Decimal `json:"unitPrice"     validate:"required,gt=0"`
	AmountPerUnit decimal.Decimal `json:"amountPerUnit" validate:"required,gt=0"`
	Supplier      *string         `json:"supplier"      validate:"omitempty,max=100"`
}

type UpdateInventoryRequest struct {
	CreateInventoryRequest
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type InventoryFilter struct {
	Search string `form:"search"`
	Status string `form:"status" validate:"omitempty,oneof=IN_STOCK LOW_IN_STOCK OUT_OF_STOCK"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventoryResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"categoryName,omitempty"`
	OrderUnit     string          `json:"orderUnit"`
	Unit          string          `json:"unit"`
	Quantity      int             `json:"quantity"`
	ReorderLevel  int             `json:"reorderLevel"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	AmountPerUnit decimal.Decimal `json:"amountPerUnit"`
	Supplier      *string         `json:"supplier"`
	Status        string          `json:"status"`
}

type InventoryListResponse struct {
	PageInfo PageInfo            `json:"pageInfo"`
	Data     []InventoryResponse `json:"data"`
}

// InventoryStatsResponse backs the dashboard stat cards.
type InventoryStatsResponse struct {
	InStockCount    int64 `json:"inStockCount"`
	LowInStockCount int64 `json:"lowInStockCount"`
	OutOfStockCount int64 `json:"outOfStockCount"`
}
