package repository

import (
	"context"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
)

type favoritesRepository struct {
	docs collection[[]model.CatalogItem]
}

// NewFavoritesRepository creates a favorites repository on the given store.
func NewFavoritesRepository(store storage.Store, logger zerolog.Logger) FavoritesRepository {
	return &favoritesRepository{docs: newCollection[[]model.CatalogItem](store, storage.KeyFavorites, logger)}
}

func (r *favoritesRepository) Get(ctx context.Context) ([]model.CatalogItem, error) {
	items, _, err := r.docs.load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CatalogItem{}
	}
	return items, nil
}

func (r *favoritesRepository) Save(ctx context.Context, items []model.CatalogItem) error {
	if items == nil {
		items = []model.CatalogItem{}
	}
	return r.docs.save(ctx, items)
}
