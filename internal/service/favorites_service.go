package service

import (
	"context"
	"fmt"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/repository"

	"github.com/rs/zerolog"
)

// favoritesService implements FavoritesService.
type favoritesService struct {
	favoritesRepo repository.FavoritesRepository
	catalog       Catalog
	logger        zerolog.Logger
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(favoritesRepo repository.FavoritesRepository, catalog Catalog, logger zerolog.Logger) FavoritesService {
	return &favoritesService{
		favoritesRepo: favoritesRepo,
		catalog:       catalog,
		logger:        logger.With().Str("service", "favorites").Logger(),
	}
}

func (s *favoritesService) List(ctx context.Context) ([]model.CatalogItem, error) {
	items, err := s.favoritesRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return items, nil
}

func (s *favoritesService) Add(ctx context.Context, item model.CatalogItem) ([]model.CatalogItem, error) {
	items, err := s.favoritesRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	if indexOf(items, item.ID) >= 0 {
		return items, nil
	}

	items = append(items, item)
	if err := s.favoritesRepo.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.logger.Debug().Int("item_id", item.ID).Msg("favorite added")

	return items, nil
}

func (s *favoritesService) AddByID(ctx context.Context, id int) ([]model.CatalogItem, error) {
	item, ok := s.catalog.GetByID(id)
	if !ok {
		return nil, model.ErrItemNotFound
	}
	return s.Add(ctx, item)
}

func (s *favoritesService) Remove(ctx context.Context, id int) ([]model.CatalogItem, error) {
	items, err := s.favoritesRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	i := indexOf(items, id)
	if i < 0 {
		return items, nil
	}

	kept := make([]model.CatalogItem, 0, len(items)-1)
	kept = append(kept, items[:i]...)
	items = append(kept, items[i+1:]...)
	if err := s.favoritesRepo.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}

	s.logger.Debug().Int("item_id", id).Msg("favorite removed")

	return items, nil
}

func (s *favoritesService) IsFavorite(ctx context.Context, id int) (bool, error) {
	items, err := s.favoritesRepo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get favorites: %w", err)
	}
	return indexOf(items, id) >= 0, nil
}

func (s *favoritesService) Toggle(ctx context.Context, item model.CatalogItem) (bool, error) {
	favorite, err := s.IsFavorite(ctx, item.ID)
	if err != nil {
		return false, err
	}

	if favorite {
		_, err = s.Remove(ctx, item.ID)
	} else {
		_, err = s.Add(ctx, item)
	}
	if err != nil {
		return favorite, err
	}

	return !favorite, nil
}

func indexOf(items []model.CatalogItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
