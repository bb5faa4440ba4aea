package services

import (
	"errors"

	"github.com/gosimple/slug"
	"github.com/ilyushkinss/product-shop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CategoryStore interface {
	List() ([]models.Category, error)
	GetBySlug(slug string) (models.Category, error)
	Create(category *models.Category) error
	CreateSubCategory(sub *models.SubCategory) error
}

type ProductStore interface {
	GetBySlug(slug string) (models.Product, error)
	List(filter models.ProductFilter) ([]models.Product, int64, error)
	Create(product *models.Product) error
	AddImage(image *models.ProductImage) error
}

type CatalogService struct {
	categories CategoryStore
	products   ProductStore
}

func NewCatalogService(categories CategoryStore, products ProductStore) *CatalogService {
	return &CatalogService{categories: categories, products: products}
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categories.List()
}

func (s *CatalogService) GetCategory(categorySlug string) (models.Category, error) {
	return s.categories.GetBySlug(categorySlug)
}

// ListProducts applies the filter precedence of the public API: when a
// subcategory slug is given, any category slug is ignored.
func (s *CatalogService) ListProducts(filter models.ProductFilter) ([]models.Product, int64, error) {
	if filter.SubcategorySlug != "" {
		filter.CategorySlug = ""
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	return s.products.List(filter)
}

func (s *CatalogService) GetProduct(productSlug string) (models.Product, error) {
	product, err := s.products.GetBySlug(productSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, models.ErrProductNotFound
	}
	return product, err
}

func (s *CatalogService) CreateCategory(category *models.Category) error {
	if category.Slug == "" {
		category.Slug = slug.Make(category.Name)
	}
	return s.categories.Create(category)
}

func (s *CatalogService) CreateSubCategory(sub *models.SubCategory) error {
	if sub.Slug == "" {
		sub.Slug = slug.Make(sub.Name)
	}
	return s.categories.CreateSubCategory(sub)
}

var minPrice = decimal.NewFromFloat(0.01)

func (s *CatalogService) CreateProduct(product *models.Product) error {
	if product.Price.LessThan(minPrice) {
		return errors.New("price must be at least 0.01")
	}
	if product.Slug == "" {
		product.Slug = slug.Make(product.Name)
	}
	return s.products.Create(product)
}

func (s *CatalogService) AddProductImage(image *models.ProductImage) error {
	return s.products.AddImage(image)
}
