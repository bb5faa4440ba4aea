package initializers

import (
	"log"

	"github.com/ilyushkinss/product-shop-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
	)
	log.Println("Database synced successfully.")
}
