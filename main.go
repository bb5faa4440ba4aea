package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/controllers"
	"github.com/ilyushkinss/product-shop-api/initializers"
	"github.com/ilyushkinss/product-shop-api/repository"
	"github.com/ilyushkinss/product-shop-api/routes"
	"github.com/ilyushkinss/product-shop-api/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cartRepo := repository.NewCartRepository(initializers.DB)
	productRepo := repository.NewProductRepository(initializers.DB)
	categoryRepo := repository.NewCategoryRepository(initializers.DB)

	cartService := services.NewCartService(cartRepo, productRepo)
	catalogService := services.NewCatalogService(categoryRepo, productRepo)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.CategoryRoutes(server, controllers.NewCategoryController(catalogService))
	routes.ProductRoutes(server, controllers.NewProductController(catalogService))
	routes.CartRoutes(server, controllers.NewCartController(cartService))
	server.Run()
}
