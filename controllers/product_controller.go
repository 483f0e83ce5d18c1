package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"slime-shop/config"
	"slime-shop/models"
	"slime-shop/repositories"
	"slime-shop/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewProductController(products *repositories.ProductRepository, categories *repositories.CategoryRepository) *ProductController {
	return &ProductController{products: products, categories: categories}
}

func productCacheKey(categorySlug string) string {
	if categorySlug == "" {
		return "products_list_all"
	}
	return "products_list_" + categorySlug
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary List active products
// @Description Get all active products, optionally filtered by category slug
// @Tags Products
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {array} models.Product
// @Failure 503 {object} models.ErrorResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	categorySlug := c.Query("category")
	cacheKey := productCacheKey(categorySlug)
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.products.ListActive(ctx, categorySlug)
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to load products from the store", RetryAfter: 30})
		return
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(products); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, products)
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid product ID"})
		return
	}

	product, err := ctrl.products.FindByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, models.ErrorResponse{Message: "Product not found"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to load product from the store", RetryAfter: 30})
		return
	}

	c.JSON(200, product)
}

// @Summary Create product
// @Description Create new product (admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	ctx := c.Request.Context()

	if _, err := ctrl.categories.FindBySlug(ctx, req.Category); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(400, models.ErrorResponse{Message: "Unknown category: " + req.Category})
			return
		}
		c.JSON(503, models.ErrorResponse{Message: "Failed to verify category", RetryAfter: 30})
		return
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   utils.CentsFromDollars(*req.Price),
		Images:       req.Images,
		CategorySlug: req.Category,
		IsActive:     true,
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := ctrl.products.Create(ctx, product); err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to create product", RetryAfter: 30})
		return
	}

	invalidateProductCache()

	c.JSON(201, product)
}

// @Summary Update product
// @Description Partial update of a product (admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	ctx := c.Request.Context()

	product, err := ctrl.products.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, models.ErrorResponse{Message: "Product not found"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to load product from the store", RetryAfter: 30})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.PriceCents = utils.CentsFromDollars(*req.Price)
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Category != nil {
		if _, err := ctrl.categories.FindBySlug(ctx, *req.Category); err != nil {
			c.JSON(400, models.ErrorResponse{Message: "Unknown category: " + *req.Category})
			return
		}
		product.CategorySlug = *req.Category
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := ctrl.products.Update(ctx, product); err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to update product", RetryAfter: 30})
		return
	}

	invalidateProductCache()

	c.JSON(200, product)
}

// @Summary Delete product
// @Description Delete product permanently (admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid product ID"})
		return
	}

	err = ctrl.products.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, models.ErrorResponse{Message: "Product not found"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to delete product", RetryAfter: 30})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"message": "Product deleted"})
}
