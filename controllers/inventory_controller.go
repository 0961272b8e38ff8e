package controllers

import (
	"net/http"

	"game-store-service/models"
	"game-store-service/services"

	"github.com/gin-gonic/gin"
)

// InventoryController handles HTTP requests for the stock-import ledger.
type InventoryController struct {
	inventory services.InventoryService
}

// NewInventoryController creates a new InventoryController.
func NewInventoryController(inventory services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

// ImportStock handles POST /stock-imports (admin only).
func (ic *InventoryController) ImportStock(ctx *gin.Context) {
	var req models.ImportStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	imp, svcErr := ic.inventory.ImportStock(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"stock_import": imp})
}

// ListImports handles GET /stock-imports (admin only). ?product_id filters
// to one product's ledger.
func (ic *InventoryController) ListImports(ctx *gin.Context) {
	var (
		imports []models.StockImport
		svcErr  *services.ServiceError
	)
	if productID := ctx.Query("product_id"); productID != "" {
		imports, svcErr = ic.inventory.ListImportsByProduct(ctx.Request.Context(), productID)
	} else {
		imports, svcErr = ic.inventory.ListImports(ctx.Request.Context())
	}
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"stock_imports": imports})
}
