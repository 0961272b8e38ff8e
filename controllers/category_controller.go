package controllers

import (
	"net/http"

	"game-store-service/models"
	"game-store-service/services"

	"github.com/gin-gonic/gin"
)

// CategoryController handles HTTP requests for categories.
type CategoryController struct {
	catalog services.CatalogService
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(catalog services.CatalogService) *CategoryController {
	return &CategoryController{catalog: catalog}
}

// CreateCategory handles POST /categories (admin only).
func (cc *CategoryController) CreateCategory(ctx *gin.Context) {
	var req models.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	category, svcErr := cc.catalog.CreateCategory(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory handles PATCH /categories/:id (admin only).
func (cc *CategoryController) UpdateCategory(ctx *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	category, svcErr := cc.catalog.UpdateCategory(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"category": category})
}

// ListCategories handles GET /categories.
func (cc *CategoryController) ListCategories(ctx *gin.Context) {
	categories, svcErr := cc.catalog.ListCategories(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DeleteCategory handles DELETE /categories/:id (admin only).
func (cc *CategoryController) DeleteCategory(ctx *gin.Context) {
	if svcErr := cc.catalog.DeleteCategory(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
