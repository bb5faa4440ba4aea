package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/controllers"
	"github.com/ilyushkinss/product-shop-api/middlewares"
)

func ProductRoutes(server *gin.Engine, controller *controllers.ProductController) {
	server.GET("/api/v1/products", controller.GetProducts)
	server.GET("/api/v1/products/:slug", controller.GetProduct)

	admin := server.Group("/api/v1", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/products", controller.CreateProduct)
		admin.POST("/products/:id/images", controller.UploadProductImages)
		admin.POST("/products/:id/images/import", controller.ImportProductImage)
	}
}
