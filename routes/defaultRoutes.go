package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
