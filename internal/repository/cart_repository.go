package repository

import (
	"context"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
)

type cartRepository struct {
	docs collection[[]model.CartLine]
}

// NewCartRepository creates a cart repository on the given store.
func NewCartRepository(store storage.Store, logger zerolog.Logger) CartRepository {
	return &cartRepository{docs: newCollection[[]model.CartLine](store, storage.KeyCart, logger)}
}

// Get returns the cart lines in insertion order.
func (r *cartRepository) Get(ctx context.Context) ([]model.CartLine, error) {
	lines, _, err := r.docs.load(ctx)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	return lines, nil
}

// Save replaces the stored cart.
func (r *cartRepository) Save(ctx context.Context, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return r.docs.save(ctx, lines)
}
