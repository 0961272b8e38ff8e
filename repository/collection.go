package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"game-store-service/store"
)

// ErrNotFound is returned when a record does not exist in its collection.
var ErrNotFound = errors.New("record not found")

const keyPrefix = "shop:"

// collection persists a slice of records as one JSON blob per collection,
// mirroring the flat array-per-key layout of the persistent store. All
// mutations are read-modify-write; single-process callers only.
type collection[T any] struct {
	kv   store.KV
	bus  *store.Bus
	name string
}

func newCollection[T any](kv store.KV, bus *store.Bus, name string) collection[T] {
	return collection[T]{kv: kv, bus: bus, name: name}
}

func (c collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.kv.Get(ctx, keyPrefix+c.name)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return items, nil
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.kv.Set(ctx, keyPrefix+c.name, data); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	return nil
}

func (c collection[T]) notify(op store.ChangeOp, id string) {
	if c.bus != nil {
		c.bus.Publish(store.Change{Collection: c.name, Op: op, ID: id})
	}
}
