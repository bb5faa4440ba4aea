package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/controllers"
	"github.com/ilyushkinss/product-shop-api/middlewares"
)

func CategoryRoutes(server *gin.Engine, controller *controllers.CategoryController) {
	server.GET("/api/v1/categories", controller.GetCategories)
	server.GET("/api/v1/categories/:slug", controller.GetCategory)

	admin := server.Group("/api/v1", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/categories", controller.CreateCategory)
		admin.POST("/subcategories", controller.CreateSubCategory)
	}
}
