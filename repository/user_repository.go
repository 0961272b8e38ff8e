package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"game-store-service/models"
	"game-store-service/store"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// KVUserRepository implements UserRepository over the KV store.
type KVUserRepository struct {
	coll collection[models.User]
}

// NewKVUserRepository creates a KV-backed user repository.
func NewKVUserRepository(kv store.KV, bus *store.Bus) UserRepository {
	return &KVUserRepository{coll: newCollection[models.User](kv, bus, store.CollectionUsers)}
}

func (r *KVUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVUserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	users, err := r.coll.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Phone == phone {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVUserRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.coll.load(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	if err := r.coll.save(ctx, users); err != nil {
		return err
	}
	r.coll.notify(store.OpUpsert, user.ID)
	return nil
}

func (r *KVUserRepository) Update(ctx context.Context, user *models.User) error {
	users, err := r.coll.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			if err := r.coll.save(ctx, users); err != nil {
				return err
			}
			r.coll.notify(store.OpUpsert, user.ID)
			return nil
		}
	}
	return ErrNotFound
}

// OTPRepository stores pending one-time codes, one record per phone number.
type OTPRepository interface {
	Put(ctx context.Context, challenge *models.OTPChallenge) error
	Get(ctx context.Context, phone string) (*models.OTPChallenge, error)
	Delete(ctx context.Context, phone string) error
}

// KVOTPRepository implements OTPRepository over the KV store.
type KVOTPRepository struct {
	kv store.KV
}

// NewKVOTPRepository creates a KV-backed OTP repository.
func NewKVOTPRepository(kv store.KV) OTPRepository {
	return &KVOTPRepository{kv: kv}
}

func otpKey(phone string) string {
	return fmt.Sprintf("%sotp:%s", keyPrefix, phone)
}

func (r *KVOTPRepository) Put(ctx context.Context, challenge *models.OTPChallenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, otpKey(challenge.Phone), data)
}

func (r *KVOTPRepository) Get(ctx context.Context, phone string) (*models.OTPChallenge, error) {
	data, err := r.kv.Get(ctx, otpKey(phone))
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *KVOTPRepository) Delete(ctx context.Context, phone string) error {
	return r.kv.Delete(ctx, otpKey(phone))
}
