package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ilyushkinss/product-shop-api/models"
	"github.com/ilyushkinss/product-shop-api/services"
	"gorm.io/gorm"
)

type CategoryController struct {
	service *services.CatalogService
}

func NewCategoryController(service *services.CatalogService) *CategoryController {
	return &CategoryController{service: service}
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.service.ListCategories()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (c *CategoryController) GetCategory(ctx *gin.Context) {
	category, err := c.service.GetCategory(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.service.CreateCategory(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Failed to create category", err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

func (c *CategoryController) CreateSubCategory(ctx *gin.Context) {
	var sub models.SubCategory
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.service.CreateSubCategory(&sub); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Failed to create subcategory", err)
		return
	}
	ctx.JSON(http.StatusCreated, sub)
}
