package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/controllers"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/v1/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/token", controllers.ObtainToken)
	}
}
