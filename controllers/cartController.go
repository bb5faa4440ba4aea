package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/models"
	"github.com/ilyushkinss/product-shop-api/services"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

func currentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return 0, false
	}
	return value.(uint), true
}

func (c *CartController) respondCartError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidQuantity):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrCartItemNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrProductUnavailable):
		sendErrorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, models.ErrCartConflict):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
	default:
		log.Println("Cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

// GetCart returns the caller's cart with live prices and totals.
func (c *CartController) GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	snapshot, err := c.service.ViewCart(userID)
	if err != nil {
		c.respondCartError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

type cartItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

// CreateCartItem adds a product to the cart, merging into an existing line.
func (c *CartController) CreateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var input cartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if input.ProductID == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "product_id is required")
		return
	}
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	item, err := c.service.AddItem(userID, input.ProductID, quantity)
	if err != nil {
		c.respondCartError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateCartItem replaces a line's quantity; zero or negative removes it.
func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, removed, err := c.service.UpdateItemQuantity(userID, uint(itemID), *input.Quantity)
	if err != nil {
		c.respondCartError(ctx, err)
		return
	}
	if removed {
		ctx.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "removed": true})
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// DeleteCartItem removes a line; deleting an absent line still succeeds.
func (c *CartController) DeleteCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := c.service.RemoveItem(userID, uint(itemID)); err != nil {
		c.respondCartError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ClearCart empties the cart; the cart itself is kept for reuse.
func (c *CartController) ClearCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.service.ClearCart(userID); err != nil {
		c.respondCartError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
