package repository

import (
	"context"
	"sort"

	"game-store-service/models"
	"game-store-service/store"
)

// StockImportRepository is the append-only ledger of stock imports. Entries
// are immutable: there are no update or delete operations.
type StockImportRepository interface {
	Append(ctx context.Context, imp *models.StockImport) error
	FindAll(ctx context.Context) ([]models.StockImport, error)
	FindByProduct(ctx context.Context, productID string) ([]models.StockImport, error)
}

// KVStockImportRepository implements StockImportRepository over the KV store.
type KVStockImportRepository struct {
	coll collection[models.StockImport]
}

// NewKVStockImportRepository creates a KV-backed stock-import ledger.
func NewKVStockImportRepository(kv store.KV, bus *store.Bus) StockImportRepository {
	return &KVStockImportRepository{coll: newCollection[models.StockImport](kv, bus, store.CollectionStockImports)}
}

func (r *KVStockImportRepository) Append(ctx context.Context, imp *models.StockImport) error {
	imports, err := r.coll.load(ctx)
	if err != nil {
		return err
	}
	imports = append(imports, *imp)
	if err := r.coll.save(ctx, imports); err != nil {
		return err
	}
	r.coll.notify(store.OpUpsert, imp.ID)
	return nil
}

// FindAll returns the ledger newest-first.
func (r *KVStockImportRepository) FindAll(ctx context.Context) ([]models.StockImport, error) {
	imports, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(imports, func(i, j int) bool {
		return imports[i].CreatedAt.After(imports[j].CreatedAt)
	})
	return imports, nil
}

func (r *KVStockImportRepository) FindByProduct(ctx context.Context, productID string) ([]models.StockImport, error) {
	imports, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.StockImport, 0, len(imports))
	for _, imp := range imports {
		if imp.ProductID == productID {
			filtered = append(filtered, imp)
		}
	}
	return filtered, nil
}
