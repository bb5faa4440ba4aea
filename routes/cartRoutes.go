package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/controllers"
	"github.com/ilyushkinss/product-shop-api/middlewares"
)

func CartRoutes(server *gin.Engine, controller *controllers.CartController) {
	cart := server.Group("/api/v1/cart", middlewares.RequireAuth())
	{
		cart.GET("", controller.GetCart)
		cart.DELETE("", controller.ClearCart)
		cart.POST("/items", controller.CreateCartItem)
		cart.PATCH("/items/:id", controller.UpdateCartItem)
		cart.DELETE("/items/:id", controller.DeleteCartItem)
	}
}
