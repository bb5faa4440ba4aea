package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart and CartItem use plain columns instead of gorm.Model: soft-deleted
// rows would keep occupying the unique indexes and break both the
// one-cart-per-user constraint and re-adding a previously removed product.

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItemView is a cart line joined with live catalog data. LineTotal is
// price times quantity at the current price; it is never persisted.
type CartItemView struct {
	ID             uint            `json:"id"`
	ProductID      uint            `json:"product_id"`
	Product        *Product        `json:"product,omitempty"`
	Quantity       int             `json:"quantity"`
	LineTotal      decimal.Decimal `json:"total_price"`
	IsAvailable    bool            `json:"is_available"`
	ProductMissing bool            `json:"product_missing,omitempty"`
}

type CartSnapshot struct {
	ID         uint            `json:"id"`
	Items      []CartItemView  `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
