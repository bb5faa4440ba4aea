package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/ilyushkinss/product-shop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetOrCreateCart returns the user's cart, creating it on first access.
// carts.user_id is unique, so when two requests race on the insert the
// loser hits a duplicate-key error and re-fetches the winner's row.
func (r *CartRepository) GetOrCreateCart(userID uint) (models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, err
	}

	cart = models.Cart{UserID: userID}
	createErr := r.db.Create(&cart).Error
	if createErr == nil {
		return cart, nil
	}
	if !isDuplicateKey(createErr) {
		return models.Cart{}, createErr
	}

	// Lost the race, the row must exist now.
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return models.Cart{}, models.ErrCartConflict
	}
	return cart, nil
}

func (r *CartRepository) FindItem(cartID, productID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	return item, err
}

// UpsertItem adds delta to the line for (cart, product), creating the line
// when absent. The increment happens inside a single INSERT ... ON DUPLICATE
// KEY UPDATE statement so concurrent adds never lose updates.
func (r *CartRepository) UpsertItem(cartID, productID uint, delta int) (models.CartItem, error) {
	if delta < 1 {
		return models.CartItem{}, models.ErrInvalidQuantity
	}

	item := models.CartItem{CartID: cartID, ProductID: productID, Quantity: delta}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return models.CartItem{}, err
	}

	// Re-read: on the merge path the in-memory struct does not carry the
	// summed quantity.
	return r.FindItem(cartID, productID)
}

// SetItemQuantity overwrites the quantity of an item in the given cart.
// A non-positive quantity deletes the line and reports removal.
func (r *CartRepository) SetItemQuantity(cartID, itemID uint, quantity int) (models.CartItem, bool, error) {
	var item models.CartItem
	if err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		return models.CartItem{}, false, err
	}

	if quantity <= 0 {
		if err := r.db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
			return models.CartItem{}, false, err
		}
		return item, true, nil
	}

	if err := r.db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return models.CartItem{}, false, err
	}
	item.Quantity = quantity
	return item, false, nil
}

// DeleteItem removes an item from the given cart. Deleting an absent item
// is a no-op.
func (r *CartRepository) DeleteItem(cartID, itemID uint) error {
	return r.db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{}).Error
}

// ClearItems empties the cart, keeping the cart row itself.
func (r *CartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (r *CartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("cart_id = ?", cartID).Order("created_at").Find(&items).Error
	return items, err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "1062")
}
