package repository

import (
	"context"

	"game-store-service/models"
	"game-store-service/store"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, slug string) ([]models.Product, error)
	Upsert(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// KVProductRepository implements ProductRepository over the KV store.
type KVProductRepository struct {
	coll collection[models.Product]
}

// NewKVProductRepository creates a KV-backed product repository.
func NewKVProductRepository(kv store.KV, bus *store.Bus) ProductRepository {
	return &KVProductRepository{coll: newCollection[models.Product](kv, bus, store.CollectionProducts)}
}

func (r *KVProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.coll.load(ctx)
}

func (r *KVProductRepository) FindByCategory(ctx context.Context, slug string) ([]models.Product, error) {
	products, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == slug {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Upsert replaces the product with a matching id, or appends it.
func (r *KVProductRepository) Upsert(ctx context.Context, product *models.Product) error {
	products, err := r.coll.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, *product)
	}

	if err := r.coll.save(ctx, products); err != nil {
		return err
	}
	r.coll.notify(store.OpUpsert, product.ID)
	return nil
}

// Delete is a hard removal; references from orders or campaigns are left
// dangling.
func (r *KVProductRepository) Delete(ctx context.Context, id string) error {
	products, err := r.coll.load(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}

	if err := r.coll.save(ctx, kept); err != nil {
		return err
	}
	r.coll.notify(store.OpDelete, id)
	return nil
}
