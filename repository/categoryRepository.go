package repository

import (
	"github.com/ilyushkinss/product-shop-api/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Preload("Subcategories").Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetBySlug(slug string) (models.Category, error) {
	var category models.Category
	err := r.db.Preload("Subcategories").Where("slug = ?", slug).First(&category).Error
	return category, err
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) CreateSubCategory(sub *models.SubCategory) error {
	return r.db.Create(sub).Error
}
