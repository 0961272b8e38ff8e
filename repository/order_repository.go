package repository

import (
	"context"
	"sort"

	"game-store-service/models"
	"game-store-service/store"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Order, int64, error)
	FindByUserID(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, error)
}

// KVOrderRepository implements OrderRepository over the KV store.
type KVOrderRepository struct {
	coll collection[models.Order]
}

// NewKVOrderRepository creates a KV-backed order repository.
func NewKVOrderRepository(kv store.KV, bus *store.Bus) OrderRepository {
	return &KVOrderRepository{coll: newCollection[models.Order](kv, bus, store.CollectionOrders)}
}

func (r *KVOrderRepository) Create(ctx context.Context, order *models.Order) error {
	orders, err := r.coll.load(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	if err := r.coll.save(ctx, orders); err != nil {
		return err
	}
	r.coll.notify(store.OpUpsert, order.ID)
	return nil
}

func (r *KVOrderRepository) Update(ctx context.Context, order *models.Order) error {
	orders, err := r.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = *order
			if err := r.coll.save(ctx, orders); err != nil {
				return err
			}
			r.coll.notify(store.OpUpsert, order.ID)
			return nil
		}
	}
	return ErrNotFound
}

func (r *KVOrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	orders, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindAll retrieves orders newest-first with pagination.
func (r *KVOrderRepository) FindAll(ctx context.Context, page, limit int) ([]models.Order, int64, error) {
	orders, err := r.coll.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	return paginate(orders, page, limit)
}

// FindByUserID retrieves a user's orders newest-first with pagination.
func (r *KVOrderRepository) FindByUserID(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, error) {
	orders, err := r.coll.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	owned := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			owned = append(owned, o)
		}
	}
	return paginate(owned, page, limit)
}

func paginate(orders []models.Order, page, limit int) ([]models.Order, int64, error) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	total := int64(len(orders))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	if start >= len(orders) {
		return []models.Order{}, total, nil
	}
	end := start + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end], total, nil
}
