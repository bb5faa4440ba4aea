package services

import (
	"errors"

	"github.com/ilyushkinss/product-shop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartStore is the persistence contract the cart service drives. The MySQL
// repository and the in-memory one both satisfy it.
type CartStore interface {
	GetOrCreateCart(userID uint) (models.Cart, error)
	FindItem(cartID, productID uint) (models.CartItem, error)
	UpsertItem(cartID, productID uint, delta int) (models.CartItem, error)
	SetItemQuantity(cartID, itemID uint, quantity int) (models.CartItem, bool, error)
	DeleteItem(cartID, itemID uint) error
	ClearItems(cartID uint) error
	ListItems(cartID uint) ([]models.CartItem, error)
}

// CatalogStore supplies live product data (price, availability) by id.
type CatalogStore interface {
	GetByID(id uint) (models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
}

type CartService struct {
	carts    CartStore
	products CatalogStore
}

func NewCartService(carts CartStore, products CatalogStore) *CartService {
	return &CartService{carts: carts, products: products}
}

// ViewCart loads the cart with live product data and computes totals.
// Lines whose product is disabled stay visible and priced, flagged
// unavailable; lines whose product no longer exists stay visible with a
// zero line total. Stale lines are surfaced, never pruned.
func (s *CartService) ViewCart(userID uint) (models.CartSnapshot, error) {
	cart, err := s.carts.GetOrCreateCart(userID)
	if err != nil {
		return models.CartSnapshot{}, err
	}

	items, err := s.carts.ListItems(cart.ID)
	if err != nil {
		return models.CartSnapshot{}, err
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.ListByIDs(ids)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	snapshot := models.CartSnapshot{
		ID:         cart.ID,
		Items:      make([]models.CartItemView, 0, len(items)),
		TotalPrice: decimal.Zero,
	}
	for _, item := range items {
		view := models.CartItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			LineTotal: decimal.Zero,
		}
		if product, ok := byID[item.ProductID]; ok {
			p := product
			view.Product = &p
			view.IsAvailable = p.Available()
			view.LineTotal = p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			snapshot.TotalPrice = snapshot.TotalPrice.Add(view.LineTotal)
		} else {
			view.ProductMissing = true
		}
		snapshot.TotalItems += item.Quantity
		snapshot.Items = append(snapshot.Items, view)
	}
	return snapshot, nil
}

// AddItem merges quantity into the user's line for the product: a second
// add of the same product increments, it never overwrites.
func (s *CartService) AddItem(userID, productID uint, quantity int) (models.CartItemView, error) {
	if quantity < 1 {
		return models.CartItemView{}, models.ErrInvalidQuantity
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItemView{}, models.ErrProductNotFound
		}
		return models.CartItemView{}, err
	}
	if !product.Available() {
		return models.CartItemView{}, models.ErrProductUnavailable
	}

	cart, err := s.carts.GetOrCreateCart(userID)
	if err != nil {
		return models.CartItemView{}, err
	}

	item, err := s.carts.UpsertItem(cart.ID, productID, quantity)
	if err != nil {
		return models.CartItemView{}, err
	}
	return itemView(item, product), nil
}

// UpdateItemQuantity replaces the quantity of a line in the caller's cart.
// A non-positive quantity removes the line instead of failing. Items in
// other users' carts are indistinguishable from absent ones.
func (s *CartService) UpdateItemQuantity(userID, itemID uint, quantity int) (models.CartItemView, bool, error) {
	cart, err := s.carts.GetOrCreateCart(userID)
	if err != nil {
		return models.CartItemView{}, false, err
	}

	item, removed, err := s.carts.SetItemQuantity(cart.ID, itemID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItemView{}, false, models.ErrCartItemNotFound
		}
		return models.CartItemView{}, false, err
	}
	if removed {
		return models.CartItemView{}, true, nil
	}

	view := models.CartItemView{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		LineTotal: decimal.Zero,
	}
	product, err := s.products.GetByID(item.ProductID)
	if err == nil {
		view = itemView(item, product)
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		view.ProductMissing = true
	} else {
		return models.CartItemView{}, false, err
	}
	return view, false, nil
}

// RemoveItem deletes a line from the caller's cart. Removing an absent
// line succeeds; lines of other users are never touched.
func (s *CartService) RemoveItem(userID, itemID uint) error {
	cart, err := s.carts.GetOrCreateCart(userID)
	if err != nil {
		return err
	}
	return s.carts.DeleteItem(cart.ID, itemID)
}

// ClearCart deletes every line; the cart row persists for reuse.
func (s *CartService) ClearCart(userID uint) error {
	cart, err := s.carts.GetOrCreateCart(userID)
	if err != nil {
		return err
	}
	return s.carts.ClearItems(cart.ID)
}

func itemView(item models.CartItem, product models.Product) models.CartItemView {
	p := product
	return models.CartItemView{
		ID:          item.ID,
		ProductID:   item.ProductID,
		Product:     &p,
		Quantity:    item.Quantity,
		LineTotal:   p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		IsAvailable: p.Available(),
	}
}
