package repository

import (
	"context"

	"game-store-service/models"
	"game-store-service/store"
)

// VoucherRepository defines the interface for voucher data access.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *models.Voucher) error
	FindByCode(ctx context.Context, code string) (*models.Voucher, error)
	FindByUser(ctx context.Context, userID string) ([]models.Voucher, error)
	Update(ctx context.Context, voucher *models.Voucher) error
}

// KVVoucherRepository implements VoucherRepository over the KV store.
type KVVoucherRepository struct {
	coll collection[models.Voucher]
}

// NewKVVoucherRepository creates a KV-backed voucher repository.
func NewKVVoucherRepository(kv store.KV, bus *store.Bus) VoucherRepository {
	return &KVVoucherRepository{coll: newCollection[models.Voucher](kv, bus, store.CollectionVouchers)}
}

func (r *KVVoucherRepository) Create(ctx context.Context, voucher *models.Voucher) error {
	vouchers, err := r.coll.load(ctx)
	if err != nil {
		return err
	}
	vouchers = append(vouchers, *voucher)
	if err := r.coll.save(ctx, vouchers); err != nil {
		return err
	}
	r.coll.notify(store.OpUpsert, voucher.ID)
	return nil
}

func (r *KVVoucherRepository) FindByCode(ctx context.Context, code string) (*models.Voucher, error) {
	vouchers, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vouchers {
		if vouchers[i].Code == code {
			return &vouchers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVVoucherRepository) FindByUser(ctx context.Context, userID string) ([]models.Voucher, error) {
	vouchers, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]models.Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if v.UserID == userID {
			owned = append(owned, v)
		}
	}
	return owned, nil
}

func (r *KVVoucherRepository) Update(ctx context.Context, voucher *models.Voucher) error {
	vouchers, err := r.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range vouchers {
		if vouchers[i].ID == voucher.ID {
			vouchers[i] = *voucher
			if err := r.coll.save(ctx, vouchers); err != nil {
				return err
			}
			r.coll.notify(store.OpUpsert, voucher.ID)
			return nil
		}
	}
	return ErrNotFound
}
