package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/ilyushkinss/product-shop-api/models"
	"gorm.io/gorm"
)

// InMemoryCartRepository mirrors the MySQL-backed cart repository for tests
// and local scenarios. The single mutex stands in for the storage-layer
// atomicity of the unique constraints and the conditional upsert.
type InMemoryCartRepository struct {
	mu         sync.Mutex
	carts      map[uint]*models.Cart // keyed by user id
	items      map[uint]*models.CartItem
	nextCartID uint
	nextItemID uint
}

func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		carts: make(map[uint]*models.Cart),
		items: make(map[uint]*models.CartItem),
	}
}

func (r *InMemoryCartRepository) GetOrCreateCart(userID uint) (models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart, ok := r.carts[userID]; ok {
		return *cart, nil
	}
	r.nextCartID++
	now := time.Now()
	cart := &models.Cart{ID: r.nextCartID, UserID: userID, CreatedAt: now, UpdatedAt: now}
	r.carts[userID] = cart
	return *cart, nil
}

func (r *InMemoryCartRepository) FindItem(cartID, productID uint) (models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findItemLocked(cartID, productID)
}

func (r *InMemoryCartRepository) findItemLocked(cartID, productID uint) (models.CartItem, error) {
	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID {
			return *item, nil
		}
	}
	return models.CartItem{}, gorm.ErrRecordNotFound
}

func (r *InMemoryCartRepository) UpsertItem(cartID, productID uint, delta int) (models.CartItem, error) {
	if delta < 1 {
		return models.CartItem{}, models.ErrInvalidQuantity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID {
			item.Quantity += delta
			item.UpdatedAt = time.Now()
			return *item, nil
		}
	}
	r.nextItemID++
	now := time.Now()
	item := &models.CartItem{
		ID:        r.nextItemID,
		CartID:    cartID,
		ProductID: productID,
		Quantity:  delta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items[item.ID] = item
	return *item, nil
}

func (r *InMemoryCartRepository) SetItemQuantity(cartID, itemID uint, quantity int) (models.CartItem, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok || item.CartID != cartID {
		return models.CartItem{}, false, gorm.ErrRecordNotFound
	}
	if quantity <= 0 {
		removed := *item
		delete(r.items, itemID)
		return removed, true, nil
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	return *item, false, nil
}

func (r *InMemoryCartRepository) DeleteItem(cartID, itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[itemID]; ok && item.CartID == cartID {
		delete(r.items, itemID)
	}
	return nil
}

func (r *InMemoryCartRepository) ClearItems(cartID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *InMemoryCartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.CartItem
	for _, item := range r.items {
		if item.CartID == cartID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CartCount reports the number of cart rows, for asserting the
// one-cart-per-user invariant in tests.
func (r *InMemoryCartRepository) CartCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

// InMemoryCatalog is a fixed product set standing in for the catalog store.
type InMemoryCatalog struct {
	mu       sync.RWMutex
	products map[uint]models.Product
}

func NewInMemoryCatalog(products ...models.Product) *InMemoryCatalog {
	c := &InMemoryCatalog{products: make(map[uint]models.Product, len(products))}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *InMemoryCatalog) GetByID(id uint) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, ok := c.products[id]
	if !ok {
		return models.Product{}, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (c *InMemoryCatalog) ListByIDs(ids []uint) ([]models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var products []models.Product
	for _, id := range ids {
		if p, ok := c.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// Put inserts or replaces a product, simulating catalog edits under live
// carts.
func (c *InMemoryCatalog) Put(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[product.ID] = product
}

// Remove drops a product, simulating catalog deletion under live carts.
func (c *InMemoryCatalog) Remove(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.products, id)
}
