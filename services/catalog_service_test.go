package services_test

import (
	"context"
	"testing"
	"time"

	"game-store-service/models"
	"game-store-service/repository"
	"game-store-service/services"
	"game-store-service/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type catalogFixture struct {
	products  repository.ProductRepository
	ledger    repository.StockImportRepository
	campaigns services.CampaignService
	catalog   services.CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	kv := store.NewMemoryKV()
	logger := zap.NewNop()
	products := repository.NewKVProductRepository(kv, nil)
	categories := repository.NewKVCategoryRepository(kv, nil)
	ledger := repository.NewKVStockImportRepository(kv, nil)
	campaigns := services.NewCampaignService(repository.NewKVCampaignRepository(kv, nil), logger)
	inventory := services.NewInventoryService(products, ledger, logger)
	pricing := services.NewPricingEngine()
	return &catalogFixture{
		products:  products,
		ledger:    ledger,
		campaigns: campaigns,
		catalog:   services.NewCatalogService(products, categories, campaigns, inventory, pricing, logger),
	}
}

func TestCreateProduct_InitialStockGoesThroughLedger(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	product, svcErr := f.catalog.CreateProduct(ctx, &models.CreateProductRequest{
		Title:           "Elden Ring",
		Price:           1200000,
		Category:        "rpg",
		InitialStock:    20,
		InitialUnitCost: 900000,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, 20, product.Stock)
	assert.Equal(t, int64(900000), product.CostPrice)

	rows, err := f.ledger.FindByProduct(ctx, product.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 20, rows[0].Quantity)
	assert.Equal(t, int64(18000000), rows[0].TotalCost)
	assert.Equal(t, "initial stock", rows[0].Note)
}

func TestCreateProduct_ZeroInitialStockWritesNoLedgerRow(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	product, svcErr := f.catalog.CreateProduct(ctx, &models.CreateProductRequest{
		Title:    "Hades II",
		Price:    500000,
		Category: "roguelike",
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, 0, product.Stock)

	rows, err := f.ledger.FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateProduct_NeverTouchesStockOrCost(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	product, svcErr := f.catalog.CreateProduct(ctx, &models.CreateProductRequest{
		Title:           "Stardew Valley",
		Price:           250000,
		Category:        "sim",
		InitialStock:    7,
		InitialUnitCost: 150000,
	})
	assert.Nil(t, svcErr)

	newTitle := "Stardew Valley (GOTY)"
	newPrice := int64(300000)
	updated, svcErr := f.catalog.UpdateProduct(ctx, product.ID, &models.UpdateProductRequest{
		Title: &newTitle,
		Price: &newPrice,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, 7, updated.Stock)
	assert.Equal(t, int64(150000), updated.CostPrice)
}

func TestGetProduct_AppliesActiveCampaign(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	product, svcErr := f.catalog.CreateProduct(ctx, &models.CreateProductRequest{
		Title:    "Celeste",
		Price:    200000,
		Category: "platformer",
	})
	assert.Nil(t, svcErr)

	_, svcErr = f.campaigns.CreateCampaign(ctx, &models.CreateCampaignRequest{
		Name:             "indie week",
		Type:             models.CampaignTypeDiscountPercent,
		Value:            30,
		TargetProductIDs: []string{product.ID},
		IsActive:         true,
	})
	assert.Nil(t, svcErr)

	view, svcErr := f.catalog.GetProduct(ctx, product.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, float64(140000), view.FinalPrice)
	assert.Equal(t, float64(30), view.DiscountPercent)
}

func TestGetProduct_ExpiredCampaignNotApplied(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	product, svcErr := f.catalog.CreateProduct(ctx, &models.CreateProductRequest{
		Title:    "Celeste",
		Price:    200000,
		Category: "platformer",
	})
	assert.Nil(t, svcErr)

	_, svcErr = f.campaigns.CreateCampaign(ctx, &models.CreateCampaignRequest{
		Name:             "last year",
		Type:             models.CampaignTypeDiscountPercent,
		Value:            30,
		TargetProductIDs: []string{product.ID},
		IsActive:         true,
		StartDate:        time.Now().AddDate(-1, 0, 0),
		EndDate:          time.Now().AddDate(0, 0, -1),
	})
	assert.Nil(t, svcErr)

	view, svcErr := f.catalog.GetProduct(ctx, product.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, float64(200000), view.FinalPrice)
	assert.Equal(t, float64(0), view.DiscountPercent)
}

func TestListProducts_FiltersByCategory(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	for _, p := range []struct {
		title    string
		category string
	}{
		{"Doom", "shooter"},
		{"Quake", "shooter"},
		{"Portal", "puzzle"},
	} {
		_, svcErr := f.catalog.CreateProduct(ctx, &models.CreateProductRequest{
			Title:    p.title,
			Price:    100000,
			Category: p.category,
		})
		assert.Nil(t, svcErr)
	}

	shooters, svcErr := f.catalog.ListProducts(ctx, "shooter")
	assert.Nil(t, svcErr)
	assert.Len(t, shooters, 2)

	all, svcErr := f.catalog.ListProducts(ctx, "")
	assert.Nil(t, svcErr)
	assert.Len(t, all, 3)
}

func TestDeleteProduct_NotFoundAfterDelete(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	product, svcErr := f.catalog.CreateProduct(ctx, &models.CreateProductRequest{
		Title:    "Tetris",
		Price:    50000,
		Category: "puzzle",
	})
	assert.Nil(t, svcErr)

	svcErr = f.catalog.DeleteProduct(ctx, product.ID)
	assert.Nil(t, svcErr)

	_, svcErr = f.catalog.GetProduct(ctx, product.ID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)

	svcErr = f.catalog.DeleteProduct(ctx, product.ID)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestCategoryCRUD(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	created, svcErr := f.catalog.CreateCategory(ctx, &models.CreateCategoryRequest{
		Name: "Role Playing",
		Slug: "rpg",
	})
	assert.Nil(t, svcErr)

	list, svcErr := f.catalog.ListCategories(ctx)
	assert.Nil(t, svcErr)
	assert.Len(t, list, 1)

	newName := "RPG & Adventure"
	updated, svcErr := f.catalog.UpdateCategory(ctx, created.ID, &models.UpdateCategoryRequest{Name: &newName})
	assert.Nil(t, svcErr)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "rpg", updated.Slug)

	svcErr = f.catalog.DeleteCategory(ctx, created.ID)
	assert.Nil(t, svcErr)

	list, svcErr = f.catalog.ListCategories(ctx)
	assert.Nil(t, svcErr)
	assert.Empty(t, list)
}
