package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	ProductID   int    `json:"product_id"`
	ImageSmall  string `json:"image_small"`
	ImageMedium string `json:"image_medium"`
	ImageLarge  string `json:"image_large"`
	IsMain      bool   `json:"is_main"`
}

type Product struct {
	gorm.Model
	SubCategoryID int             `json:"subcategory_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Slug          string          `gorm:"uniqueIndex;size:200" json:"slug"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description   string          `json:"description"`
	IsAvailable   *bool           `gorm:"default:true" json:"is_available"`
	Attributes    datatypes.JSON  `json:"attributes"`
	Images        []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}

// Available treats a product with no explicit flag as available,
// matching the column default.
func (p Product) Available() bool {
	return p.IsAvailable == nil || *p.IsAvailable
}

// ProductFilter narrows product listings. SubcategorySlug takes
// precedence over CategorySlug when both are set.
type ProductFilter struct {
	CategorySlug    string
	SubcategorySlug string
	Search          string
	Page            int
	Limit           int
}
