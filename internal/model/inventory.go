package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryStatus is the derived stock state of an inventory item.
type InventoryStatus string

const (
	StatusInStock    InventoryStatus = "IN_STOCK"
	StatusLowInStock InventoryStatus = "LOW_IN_STOCK"
	StatusOutOfStock InventoryStatus = "OUT_OF_STOCK"
)

// DeriveStockStatus computes the status from quantity and reorder level.
// A reorder level of 0 means "never flag as low".
func DeriveStockStatus(quantity, reorderLevel int) InventoryStatus {
	if quantity == 0 {
		return StatusOutOfStock
	}
	if reorderLevel > 0 && quantity <= reorderLevel {
		return StatusLowInStock
	}
	return StatusInStock
}

// Inventory is a raw-material stock item (beans, milk, cups…).
// Status is persisted but always recomputed on create/update.
type Inventory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      string    `gorm:"index;not null;uniqueIndex:idx_inventory_user_sku"`
	SKU         string    `gorm:"not null;uniqueIndex:idx_inventory_user_sku"`
	Name        string    `gorm:"index;not null"`
	Description *string
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null"`
	// OrderUnit is the purchasing unit (e.g. "sack"); Unit is the usage unit
	// (e.g. "g"). AmountPerUnit converts between them and must be > 0.
	OrderUnit     string          `gorm:"not null"`
	Unit          string          `gorm:"not null"`
	Quantity      int             `gorm:"not null;default:0"`
	ReorderLevel  int             `gorm:"not null;default:0"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	AmountPerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Supplier      *string
	Status        InventoryStatus `gorm:"not null;default:'IN_STOCK';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *ProductCategory `gorm:"foreignKey:CategoryID"`
}

func (Inventory) TableName() string { return "inventory_items" }
