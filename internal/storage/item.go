package storage

import (
	"errors"
	"fmt"

	"github.com/shamaton/msgpack/v2"
)

// ErrNotFound is returned by Item.Load when nothing was saved under the key.
var ErrNotFound = errors.New("not found")

// Item is a single typed value stored under a fixed key. Values are
// encoded with msgpack, so only exported fields are persisted.
type Item[T any] struct {
	key []byte
}

func NewItem[T any](key string) Item[T] {
	return Item[T]{key: []byte(key)}
}

// Key returns the raw storage key.
func (i Item[T]) Key() []byte {
	return i.key
}

// Load returns the stored value or ErrNotFound.
func (i Item[T]) Load(store KVStore) (T, error) {
	v, ok, err := i.MayLoad(store)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, fmt.Errorf("item %q: %w", i.key, ErrNotFound)
	}
	return v, nil
}

// MayLoad is Load without the error for a missing value.
func (i Item[T]) MayLoad(store KVStore) (T, bool, error) {
	var v T
	bz := store.Get(i.key)
	if bz == nil {
		return v, false, nil
	}
	if err := msgpack.Unmarshal(bz, &v); err != nil {
		return v, false, fmt.Errorf("item %q: decode: %w", i.key, err)
	}
	return v, true, nil
}

func (i Item[T]) Save(store KVStore, v T) error {
	bz, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("item %q: encode: %w", i.key, err)
	}
	store.Set(i.key, bz)
	return nil
}

// Update loads the value, applies fn and saves the result. A missing value
// is an error.
func (i Item[T]) Update(store KVStore, fn func(T) (T, error)) (T, error) {
	v, err := i.Load(store)
	if err != nil {
		return v, err
	}
	if v, err = fn(v); err != nil {
		return v, err
	}
	return v, i.Save(store, v)
}

func (i Item[T]) Remove(store KVStore) {
	store.Delete(i.key)
}

func (i Item[T]) Exists(store KVStore) bool {
	return store.Get(i.key) != nil
}
