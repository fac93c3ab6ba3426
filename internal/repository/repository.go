package repository

import (
	"context"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
)

// CartRepository defines access to the persisted cart collection.
type CartRepository interface {
	// Get returns the cart lines in insertion order, or an empty cart if none was stored.
	Get(ctx context.Context) ([]model.CartLine, error)

	// Save replaces the stored cart.
	Save(ctx context.Context, lines []model.CartLine) error
}

// FavoritesRepository defines access to the persisted favorites collection.
type FavoritesRepository interface {
	// Get returns the favorited item snapshots, or an empty list if none was stored.
	Get(ctx context.Context) ([]model.CatalogItem, error)

	// Save replaces the stored favorites.
	Save(ctx context.Context, items []model.CatalogItem) error
}

// OrderRepository defines access to the persisted order history, newest first.
type OrderRepository interface {
	// List returns the order history, or an empty history if none was stored.
	List(ctx context.Context) ([]model.Order, error)

	// Save replaces the stored order history.
	Save(ctx context.Context, orders []model.Order) error
}

// ProfileRepository defines access to the optional user profile.
type ProfileRepository interface {
	// Get returns the stored profile, or nil if none was saved.
	Get(ctx context.Context) (*model.UserProfile, error)

	// Save replaces the stored profile.
	Save(ctx context.Context, profile *model.UserProfile) error
}
