package controllers

import (
	"errors"
	"strconv"

	"slime-shop/models"
	"slime-shop/repositories"
	"slime-shop/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories *repositories.CategoryRepository
}

func NewCategoryController(categories *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

// @Summary List categories
// @Description Get categories ordered by display_order. Pass all=true to include inactive ones (admin list).
// @Tags Categories
// @Produce json
// @Param all query bool false "Include inactive categories"
// @Success 200 {array} models.Category
// @Failure 503 {object} models.ErrorResponse
// @Router /api/categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	includeInactive := c.Query("all") == "true"

	categories, err := ctrl.categories.List(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to load categories from the store", RetryAfter: 30})
		return
	}

	c.JSON(200, categories)
}

// @Summary Create category
// @Description Create a category; slug is derived from the name unless provided (admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.ErrorResponse
// @Router /api/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		c.JSON(400, models.ErrorResponse{
			Message: "Validation failed",
			Details: []models.FieldError{{Field: "name", Message: "must contain letters or digits"}},
		})
		return
	}

	category := &models.Category{
		Name:     req.Name,
		Slug:     slug,
		IsActive: true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	err := ctrl.categories.Create(c.Request.Context(), category)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(400, models.ErrorResponse{
			Message: "Category name or slug already exists",
			Details: []models.FieldError{{Field: "name", Message: "must be unique"}},
		})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to create category", RetryAfter: 30})
		return
	}

	c.JSON(201, category)
}

// @Summary Update category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.ErrorResponse
// @Router /api/categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid category ID"})
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	ctx := c.Request.Context()

	category, err := ctrl.categories.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, models.ErrorResponse{Message: "Category not found"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to load category from the store", RetryAfter: 30})
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
		// The slug follows a renamed category unless the caller pins one.
		if req.Slug == nil {
			category.Slug = utils.Slugify(*req.Name)
		}
	}
	if req.Slug != nil && *req.Slug != "" {
		category.Slug = *req.Slug
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	err = ctrl.categories.Update(ctx, category)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(400, models.ErrorResponse{
			Message: "Category name or slug already exists",
			Details: []models.FieldError{{Field: "name", Message: "must be unique"}},
		})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to update category", RetryAfter: 30})
		return
	}

	c.JSON(200, category)
}

// @Summary Delete category
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid category ID"})
		return
	}

	err = ctrl.categories.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, models.ErrorResponse{Message: "Category not found"})
		return
	}
	if errors.Is(err, repositories.ErrInUse) {
		c.JSON(400, models.ErrorResponse{Message: "Category still has products; move or delete them first"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to delete category", RetryAfter: 30})
		return
	}

	c.JSON(200, gin.H{"message": "Category deleted"})
}

// @Summary Reorder category
// @Description Swap the category's display_order with its neighbor in the given direction (admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.ReorderCategoryRequest true "Direction: up or down"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/categories/{id}/reorder [patch]
func (ctrl *CategoryController) ReorderCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid category ID"})
		return
	}

	var req models.ReorderCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	moved, err := ctrl.categories.Reorder(c.Request.Context(), id, req.Direction)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, models.ErrorResponse{Message: "Category not found"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Failed to reorder category", RetryAfter: 30})
		return
	}

	c.JSON(200, gin.H{"message": "Category reordered", "moved": moved})
}
