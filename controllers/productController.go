package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/ilyushkinss/product-shop-api/models"
	"github.com/ilyushkinss/product-shop-api/services"
	"github.com/ilyushkinss/product-shop-api/utils"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

type ProductController struct {
	service *services.CatalogService
}

func NewProductController(service *services.CatalogService) *ProductController {
	return &ProductController{service: service}
}

// GetProducts lists products filtered by subcategory or category slug and
// an optional name search, with pagination metadata.
func (c *ProductController) GetProducts(ctx *gin.Context) {
	page, limit := utils.Pagination(ctx)
	filter := models.ProductFilter{
		CategorySlug:    ctx.Query("category"),
		SubcategorySlug: ctx.Query("subcategory"),
		Search:          ctx.Query("search"),
		Page:            page,
		Limit:           limit,
	}

	products, count, err := c.service.ListProducts(filter)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	product, err := c.service.GetProduct(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.service.CreateProduct(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Failed to create product", err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func uploadToBucket(uploader *manager.Uploader, key, contentType string, body *bytes.Reader) (string, error) {
	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String("product-shop"),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}

// UploadProductImages accepts a multipart form with small/medium/large
// renditions, stores them in S3 and records a ProductImage row.
func (c *ProductController) UploadProductImages(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	image := models.ProductImage{
		ProductID: productID,
		IsMain:    ctx.PostForm("is_main") == "true",
	}
	urls := map[string]*string{
		"image_small":  &image.ImageSmall,
		"image_medium": &image.ImageMedium,
		"image_large":  &image.ImageLarge,
	}

	for field, target := range urls {
		files := form.File[field]
		if len(files) == 0 {
			respondWithError(ctx, http.StatusBadRequest, "Missing "+field, nil)
			return
		}
		file := files[0]

		f, openErr := file.Open()
		if openErr != nil {
			respondWithError(ctx, http.StatusBadRequest, "Unable to read "+field, openErr)
			return
		}
		var buf bytes.Buffer
		_, copyErr := buf.ReadFrom(f)
		f.Close()
		if copyErr != nil {
			respondWithError(ctx, http.StatusBadRequest, "Unable to read "+field, copyErr)
			return
		}

		key := fmt.Sprintf("products/%s/%d-%s%s", field, productID, uuid.NewString(), path.Ext(file.Filename))
		location, uploadErr := uploadToBucket(uploader, key, file.Header.Get("Content-Type"), bytes.NewReader(buf.Bytes()))
		if uploadErr != nil {
			log.Printf("Error uploading %s: %v", file.Filename, uploadErr)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to upload "+field, uploadErr)
			return
		}
		*target = location
	}

	if err := c.service.AddProductImage(&image); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save product image", err)
		return
	}
	ctx.JSON(http.StatusCreated, image)
}

type importImageInput struct {
	URL    string `json:"url" binding:"required,url"`
	IsMain bool   `json:"is_main"`
}

// ImportProductImage fetches an image from a remote URL and stores it in S3
// as all three renditions of a new ProductImage.
func (c *ProductController) ImportProductImage(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var input importImageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	client := resty.New()
	resp, err := client.R().Get(input.URL)
	if err != nil {
		respondWithError(ctx, http.StatusBadGateway, "Failed to fetch image", err)
		return
	}
	if resp.StatusCode() != http.StatusOK {
		respondWithError(ctx, http.StatusBadGateway,
			fmt.Sprintf("Image fetch returned status %d", resp.StatusCode()), nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	key := fmt.Sprintf("products/imported/%d-%s%s", productID, uuid.NewString(), path.Ext(input.URL))
	location, err := uploadToBucket(uploader, key, resp.Header().Get("Content-Type"), bytes.NewReader(resp.Body()))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	image := models.ProductImage{
		ProductID:   productID,
		ImageSmall:  location,
		ImageMedium: location,
		ImageLarge:  location,
		IsMain:      input.IsMain,
	}
	if err := c.service.AddProductImage(&image); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save product image", err)
		return
	}
	ctx.JSON(http.StatusCreated, image)
}
