package repository

import (
	"github.com/ilyushkinss/product-shop-api/models"
	"gorm.io/gorm"
)

// ProductRepository is the read side of the catalog the cart depends on,
// plus the admin write surface.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	return product, err
}

func (r *ProductRepository) GetBySlug(slug string) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Where("slug = ?", slug).First(&product).Error
	return product, err
}

// ListByIDs batch-loads products for a cart view in one query.
func (r *ProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

// List returns a filtered page of products together with the total count.
func (r *ProductRepository) List(filter models.ProductFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Preload("Images")

	if filter.SubcategorySlug != "" {
		query = query.
			Joins("JOIN sub_categories ON sub_categories.id = products.sub_category_id").
			Where("sub_categories.slug = ?", filter.SubcategorySlug)
	} else if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN sub_categories ON sub_categories.id = products.sub_category_id").
			Joins("JOIN categories ON categories.id = sub_categories.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	if filter.Search != "" {
		query = query.Where("products.name LIKE ?", "%"+filter.Search+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var products []models.Product
	if err := query.Order("products.name").Limit(filter.Limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, count, nil
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) AddImage(image *models.ProductImage) error {
	return r.db.Create(image).Error
}
