package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Product Shop API.

The following are the endpoints for this API:

AUTH
- POST "/api/v1/auth/register" - Create user account
- POST "/api/v1/auth/token" - Obtain access token

CATALOG
- GET "/api/v1/categories" - List categories with subcategories
- GET "/api/v1/categories/{slug}" - Get category by slug
- GET "/api/v1/products" - List products (category, subcategory, search, page, limit)
- GET "/api/v1/products/{slug}" - Get product by slug

CART (authenticated)
- GET "/api/v1/cart" - View cart with totals
- DELETE "/api/v1/cart" - Clear cart
- POST "/api/v1/cart/items" - Add product to cart
- PATCH "/api/v1/cart/items/{id}" - Change item quantity
- DELETE "/api/v1/cart/items/{id}" - Remove item from cart`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
