package storage

import (
	"context"
	"errors"
)

// Key names one of the persisted collections.
type Key string

const (
	KeyCart         Key = "cart"
	KeyFavorites    Key = "favorites"
	KeyOrderHistory Key = "order_history"
	KeyUserProfile  Key = "user_profile"
)

// Keys lists every collection in a stable order.
var Keys = []Key{KeyCart, KeyFavorites, KeyOrderHistory, KeyUserProfile}

// Valid reports whether k is one of the known collections.
func (k Key) Valid() bool {
	switch k {
	case KeyCart, KeyFavorites, KeyOrderHistory, KeyUserProfile:
		return true
	}
	return false
}

// ErrUnknownKey is returned for keys outside the fixed collection set.
var ErrUnknownKey = errors.New("unknown storage key")

// Store is a key-value byte store holding one serialised document per collection.
type Store interface {
	// Get returns the stored document. found is false when the key was never written.
	Get(ctx context.Context, key Key) (value []byte, found bool, err error)

	// Set replaces the whole document stored under key.
	Set(ctx context.Context, key Key, value []byte) error

	// Close releases resources held by the store.
	Close() error
}

func checkKey(key Key) error {
	if !key.Valid() {
		return ErrUnknownKey
	}
	return nil
}
