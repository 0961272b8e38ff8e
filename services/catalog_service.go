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

// CatalogService manages products and categories. Product reads are
// price-annotated: every product view goes through the pricing engine with
// the currently active campaigns.
type CatalogService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *ServiceError)
	GetProduct(ctx context.Context, id string) (*models.PricedProduct, *ServiceError)
	ListProducts(ctx context.Context, categorySlug string) ([]models.PricedProduct, *ServiceError)
	DeleteProduct(ctx context.Context, id string) *ServiceError

	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError)
	UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, *ServiceError)
	ListCategories(ctx context.Context) ([]models.Category, *ServiceError)
	DeleteCategory(ctx context.Context, id string) *ServiceError
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	campaigns    CampaignService
	inventory    InventoryService
	pricing      *PricingEngine
	logger       *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	campaigns CampaignService,
	inventory InventoryService,
	pricing *PricingEngine,
	logger *zap.Logger,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		campaigns:    campaigns,
		inventory:    inventory,
		pricing:      pricing,
		logger:       logger,
	}
}

// CreateProduct saves a new product. A nonzero initial stock is routed
// through the inventory ledger in the same call, so the quantity is backed
// by exactly one stock-import entry from the start.
func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	now := time.Now()
	product := &models.Product{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Stock:       0,
		Rating:      req.Rating,
		ReleaseDate: req.ReleaseDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create product"}
	}

	if req.InitialStock > 0 {
		imp, svcErr := s.inventory.ImportStock(ctx, &models.ImportStockRequest{
			ProductID: product.ID,
			Quantity:  req.InitialStock,
			UnitCost:  req.InitialUnitCost,
			Note:      "initial stock",
		})
		if svcErr != nil {
			s.logger.Error("Failed to record initial stock", zap.String("product_id", product.ID), zap.String("reason", svcErr.Message))
			return nil, svcErr
		}
		product.Stock = req.InitialStock
		product.CostPrice = imp.UnitCost
	}

	s.logger.Info("Product created", zap.String("id", product.ID), zap.String("title", product.Title))
	return product, nil
}

// UpdateProduct applies a partial update. Stock and cost price are not
// touched here; only the inventory ledger mutates them.
func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to load product", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.ReleaseDate != nil {
		product.ReleaseDate = *req.ReleaseDate
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}
	return product, nil
}

// GetProduct returns a single product annotated with its campaign-adjusted
// price.
func (s *catalogServiceImpl) GetProduct(ctx context.Context, id string) (*models.PricedProduct, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to load product", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}

	active, err := s.campaigns.ActiveCampaigns(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to load campaigns", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}

	view := s.pricing.PricedView(product, active)
	return &view, nil
}

// ListProducts returns price-annotated products, optionally filtered by
// category slug.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, categorySlug string) ([]models.PricedProduct, *ServiceError) {
	var (
		products []models.Product
		err      error
	)
	if categorySlug != "" {
		products, err = s.productRepo.FindByCategory(ctx, categorySlug)
	} else {
		products, err = s.productRepo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list products"}
	}

	active, err := s.campaigns.ActiveCampaigns(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to load campaigns", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list products"}
	}

	views := make([]models.PricedProduct, 0, len(products))
	for i := range products {
		views = append(views, s.pricing.PricedView(&products[i], active))
	}
	return views, nil
}

// DeleteProduct hard-deletes a product. Orders keep their denormalized
// snapshots and campaigns keep their target id lists.
func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id string) *ServiceError {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete product"}
	}
	s.logger.Info("Product deleted", zap.String("id", id))
	return nil
}

// CreateCategory creates a new category.
func (s *catalogServiceImpl) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError) {
	now := time.Now()
	category := &models.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        req.Slug,
		Icon:        req.Icon,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categoryRepo.Upsert(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create category"}
	}
	return category, nil
}

// UpdateCategory applies a partial update to a category.
func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, *ServiceError) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update category"}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Upsert(ctx, category); err != nil {
		s.logger.Error("Failed to update category", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update category"}
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list categories"}
	}
	return categories, nil
}

// DeleteCategory hard-deletes a category without cascading to products.
func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id string) *ServiceError {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		s.logger.Error("Failed to delete category", zap.String("id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete category"}
	}
	return nil
}
