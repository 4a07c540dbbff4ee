package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog entry. HasVariants=true means the SKU and
// price live on each ProductVariant; false means the product carries its own
// SKU directly and owns no options or variants.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      string    `gorm:"index;not null;uniqueIndex:idx_products_user_sku"`
	Name        string    `gorm:"index;not null"`
	Description *string
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	SKU         string          `gorm:"not null;uniqueIndex:idx_products_user_sku"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive    bool            `gorm:"not null;default:true"`
	HasVariants bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category       *ProductCategory       `gorm:"foreignKey:CategoryID"`
	VariantOptions []ProductVariantOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants       []ProductVariant       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }

// ProductVariantOption is a named axis of variation (e.g. "Size").
// Option names are unique (case-insensitive) within a product; the
// case-insensitive check is enforced by the service layer.
type ProductVariantOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_variant_options_product_name"`
	Name      string    `gorm:"not null;uniqueIndex:idx_variant_options_product_name"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Values []ProductVariantOptionValue `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
}

func (ProductVariantOption) TableName() string { return "product_variant_options" }

// ProductVariantOptionValue is one concrete value along an option's axis
// (e.g. "12oz"). Value strings are unique (case-insensitive) within an option.
type ProductVariantOptionValue struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OptionID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_variant_option_values_option_value"`
	Value    string    `gorm:"not null;uniqueIndex:idx_variant_option_values_option_value"`
	Position int       `gorm:"not null;default:0"`
}

func (ProductVariantOptionValue) TableName() string { return "product_variant_option_values" }

// ProductVariant is one sellable combination of option values. Title is the
// option values joined with " / " in option order (e.g. "12oz / Hot").
type ProductVariant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_variants_product_sku;uniqueIndex:idx_variants_product_title"`
	Title       string    `gorm:"not null;uniqueIndex:idx_variants_product_title"`
	SKU         string    `gorm:"not null;uniqueIndex:idx_variants_product_sku"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsDefault   bool            `gorm:"not null;default:false"`
	IsAvailable bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductVariant) TableName() string { return "product_variants" }
