package services

import (
	"context"
	"errors"
	"time"

	"game-store-service/models"
	"game-store-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService is the ledger of stock imports and the sole authorized
// mutator of product stock and cost price after a product is created.
type InventoryService interface {
	ImportStock(ctx context.Context, req *models.ImportStockRequest) (*models.StockImport, *ServiceError)
	ListImports(ctx context.Context) ([]models.StockImport, *ServiceError)
	ListImportsByProduct(ctx context.Context, productID string) ([]models.StockImport, *ServiceError)
}

type inventoryServiceImpl struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.StockImportRepository
	logger      *zap.Logger
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(
	productRepo repository.ProductRepository,
	ledgerRepo repository.StockImportRepository,
	logger *zap.Logger,
) InventoryService {
	return &inventoryServiceImpl{
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
		logger:      logger,
	}
}

// ImportStock records a stock import and applies it to the product:
// stock increases by the quantity and cost price is overwritten with the
// import's unit cost (last cost wins, not a weighted average). A missing
// product is a 404 and leaves both the ledger and every product untouched —
// an import is never recorded without its stock effect.
func (s *inventoryServiceImpl) ImportStock(ctx context.Context, req *models.ImportStockRequest) (*models.StockImport, *ServiceError) {
	if req.Quantity <= 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Quantity must be a positive integer"}
	}
	if req.UnitCost < 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Unit cost must not be negative"}
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to load product for import", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to import stock"}
	}

	now := time.Now()
	imp := &models.StockImport{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitCost:  req.UnitCost,
		TotalCost: int64(req.Quantity) * req.UnitCost,
		Note:      req.Note,
		CreatedAt: now,
	}

	if err := s.ledgerRepo.Append(ctx, imp); err != nil {
		s.logger.Error("Failed to append stock import", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to record stock import"}
	}

	product.Stock += req.Quantity
	product.CostPrice = req.UnitCost
	product.UpdatedAt = now

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		s.logger.Error("Failed to apply stock import to product", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product stock"}
	}

	s.logger.Info("Stock imported",
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
		zap.Int64("unit_cost", req.UnitCost),
		zap.Int("stock", product.Stock),
	)
	return imp, nil
}

// ListImports returns the full ledger, newest first.
func (s *inventoryServiceImpl) ListImports(ctx context.Context) ([]models.StockImport, *ServiceError) {
	imports, err := s.ledgerRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list stock imports", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list stock imports"}
	}
	return imports, nil
}

// ListImportsByProduct returns one product's ledger entries, newest first.
func (s *inventoryServiceImpl) ListImportsByProduct(ctx context.Context, productID string) ([]models.StockImport, *ServiceError) {
	imports, err := s.ledgerRepo.FindByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to list stock imports", zap.String("product_id", productID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list stock imports"}
	}
	return imports, nil
}
