package repository

import (
	"context"

	"game-store-service/models"
	"game-store-service/store"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Upsert(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// KVCategoryRepository implements CategoryRepository over the KV store.
type KVCategoryRepository struct {
	coll collection[models.Category]
}

// NewKVCategoryRepository creates a KV-backed category repository.
func NewKVCategoryRepository(kv store.KV, bus *store.Bus) CategoryRepository {
	return &KVCategoryRepository{coll: newCollection[models.Category](kv, bus, store.CollectionCategories)}
}

func (r *KVCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	categories, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVCategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	categories, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	return r.coll.load(ctx)
}

func (r *KVCategoryRepository) Upsert(ctx context.Context, category *models.Category) error {
	categories, err := r.coll.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range categories {
		if categories[i].ID == category.ID {
			categories[i] = *category
			replaced = true
			break
		}
	}
	if !replaced {
		categories = append(categories, *category)
	}

	if err := r.coll.save(ctx, categories); err != nil {
		return err
	}
	r.coll.notify(store.OpUpsert, category.ID)
	return nil
}

// Delete does not cascade to products; their category slugs are left
// dangling and render as the raw slug.
func (r *KVCategoryRepository) Delete(ctx context.Context, id string) error {
	categories, err := r.coll.load(ctx)
	if err != nil {
		return err
	}

	kept := categories[:0]
	found := false
	for _, c := range categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
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
