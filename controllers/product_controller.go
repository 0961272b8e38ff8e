package controllers

import (
	"net/http"

	"game-store-service/models"
	"game-store-service/services"

	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for catalog products.
type ProductController struct {
	catalog services.CatalogService
}

// NewProductController creates a new ProductController.
func NewProductController(catalog services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// CreateProduct handles POST /products (admin only).
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.catalog.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct handles PATCH /products/:id (admin only).
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	var req models.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.catalog.UpdateProduct(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// GetProduct handles GET /products/:id. The response carries the
// campaign-adjusted price.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	product, svcErr := pc.catalog.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// ListProducts handles GET /products, optionally filtered by ?category=slug.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products, svcErr := pc.catalog.ListProducts(ctx.Request.Context(), ctx.Query("category"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

// DeleteProduct handles DELETE /products/:id (admin only).
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	if svcErr := pc.catalog.DeleteProduct(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
