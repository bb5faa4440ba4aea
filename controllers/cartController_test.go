package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/controllers"
	"github.com/ilyushkinss/product-shop-api/models"
	"github.com/ilyushkinss/product-shop-api/repository"
	"github.com/ilyushkinss/product-shop-api/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// identify reads X-User-ID instead of a JWT so handler behavior can be
// tested without tokens; token validation is covered in the middlewares
// package.
func identify(ctx *gin.Context) {
	if v := ctx.GetHeader("X-User-ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			ctx.Set("userID", uint(id))
		}
	}
	ctx.Next()
}

func setupCartAPI(products ...models.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)

	carts := repository.NewInMemoryCartRepository()
	catalog := repository.NewInMemoryCatalog(products...)
	controller := controllers.NewCartController(services.NewCartService(carts, catalog))

	router := gin.New()
	cart := router.Group("/api/v1/cart", identify)
	{
		cart.GET("", controller.GetCart)
		cart.DELETE("", controller.ClearCart)
		cart.POST("/items", controller.CreateCartItem)
		cart.PATCH("/items/:id", controller.UpdateCartItem)
		cart.DELETE("/items/:id", controller.DeleteCartItem)
	}
	return router
}

func doJSON(router *gin.Engine, method, target, userID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func product(id uint, price string) models.Product {
	p := models.Product{
		Name:        "Product " + strconv.Itoa(int(id)),
		Price:       decimal.RequireFromString(price),
		IsAvailable: boolPtr(true),
	}
	p.ID = id
	return p
}

func TestCartEndpointsRequireIdentity(t *testing.T) {
	router := setupCartAPI(product(1, "10.00"))

	res := doJSON(router, http.MethodGet, "/api/v1/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = doJSON(router, http.MethodPost, "/api/v1/cart/items", "", `{"product_id":1}`)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestCartFlowOverHTTP(t *testing.T) {
	router := setupCartAPI(product(1, "99.99"))

	// First add creates the line.
	res := doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	var line models.CartItemView
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &line))
	assert.Equal(t, 2, line.Quantity)

	// Second add merges into it.
	res = doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":1,"quantity":3}`)
	require.Equal(t, http.StatusCreated, res.Code)
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &line))
	assert.Equal(t, 5, line.Quantity)

	// View shows one line with recomputed totals.
	res = doJSON(router, http.MethodGet, "/api/v1/cart", "42", "")
	require.Equal(t, http.StatusOK, res.Code)
	var snapshot models.CartSnapshot
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &snapshot))
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 5, snapshot.TotalItems)
	assert.Equal(t, "499.95", snapshot.TotalPrice.StringFixed(2))

	// PATCH to zero removes the line.
	res = doJSON(router, http.MethodPatch, "/api/v1/cart/items/"+strconv.Itoa(int(line.ID)), "42", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"removed":true`)

	res = doJSON(router, http.MethodGet, "/api/v1/cart", "42", "")
	require.Equal(t, http.StatusOK, res.Code)
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &snapshot))
	assert.Empty(t, snapshot.Items)
	assert.Equal(t, "0.00", snapshot.TotalPrice.StringFixed(2))
}

func TestCreateCartItemDefaultsQuantityToOne(t *testing.T) {
	router := setupCartAPI(product(1, "10.00"))

	res := doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":1}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var line models.CartItemView
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &line))
	assert.Equal(t, 1, line.Quantity)
}

func TestCreateCartItemStatusMapping(t *testing.T) {
	unavailable := product(2, "5.00")
	unavailable.IsAvailable = boolPtr(false)
	router := setupCartAPI(product(1, "10.00"), unavailable)

	// Unknown product.
	res := doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":99}`)
	assert.Equal(t, http.StatusNotFound, res.Code)

	// Disabled product.
	res = doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)

	// Zero and negative quantity are validation errors on add.
	res = doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":1,"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	res = doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":1,"quantity":-2}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	// Missing product_id.
	res = doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestUpdateForeignItemYieldsNotFound(t *testing.T) {
	router := setupCartAPI(product(1, "10.00"))

	res := doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusCreated, res.Code)
	var line models.CartItemView
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &line))

	itemPath := "/api/v1/cart/items/" + strconv.Itoa(int(line.ID))

	// A different user sees 404, not 403: existence must not leak.
	res = doJSON(router, http.MethodPatch, itemPath, "7", `{"quantity":5}`)
	assert.Equal(t, http.StatusNotFound, res.Code)

	// Foreign delete is a no-op success and leaves the owner's line intact.
	res = doJSON(router, http.MethodDelete, itemPath, "7", "")
	assert.Equal(t, http.StatusNoContent, res.Code)

	res = doJSON(router, http.MethodGet, "/api/v1/cart", "42", "")
	var snapshot models.CartSnapshot
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &snapshot))
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
}

func TestDeleteAndClearCart(t *testing.T) {
	router := setupCartAPI(product(1, "10.00"), product(2, "4.00"))

	res := doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":1,"quantity":1}`)
	require.Equal(t, http.StatusCreated, res.Code)
	var line models.CartItemView
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &line))

	res = doJSON(router, http.MethodDelete, "/api/v1/cart/items/"+strconv.Itoa(int(line.ID)), "42", "")
	assert.Equal(t, http.StatusNoContent, res.Code)

	// Deleting again still succeeds.
	res = doJSON(router, http.MethodDelete, "/api/v1/cart/items/"+strconv.Itoa(int(line.ID)), "42", "")
	assert.Equal(t, http.StatusNoContent, res.Code)

	res = doJSON(router, http.MethodPost, "/api/v1/cart/items", "42", `{"product_id":2,"quantity":3}`)
	require.Equal(t, http.StatusCreated, res.Code)

	// Clearing returns a body, per the delete-cart contract.
	res = doJSON(router, http.MethodDelete, "/api/v1/cart", "42", "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Cart cleared")

	res = doJSON(router, http.MethodGet, "/api/v1/cart", "42", "")
	var snapshot models.CartSnapshot
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &snapshot))
	assert.Empty(t, snapshot.Items)
}
