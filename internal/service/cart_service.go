package service

import (
	"context"
	"fmt"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/pricing"
	"github.com/CobbyElsonfx/food-delivery-app/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	catalog  Catalog
	clock    Clock
	logger   zerolog.Logger
}

// NewCartService creates a new cart service. A nil clock uses DefaultClock.
func NewCartService(cartRepo repository.CartRepository, catalog Catalog, clock Clock, logger zerolog.Logger) CartService {
	if clock == nil {
		clock = DefaultClock
	}
	return &cartService{
		cartRepo: cartRepo,
		catalog:  catalog,
		clock:    clock,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the current cart lines.
func (s *cartService) Get(ctx context.Context) ([]model.CartLine, error) {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return lines, nil
}

// Add inserts item or increments its existing line by quantity.
func (s *cartService) Add(ctx context.Context, item model.CatalogItem, quantity int) ([]model.CartLine, error) {
	if quantity < 1 {
		s.logger.Warn().Int("item_id", item.ID).Int("quantity", quantity).Msg("invalid quantity")
		return nil, model.NewValidationError("quantity", "must be at least 1")
	}

	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	found := false
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, model.CartLine{
			CatalogItem: item,
			Quantity:    quantity,
			AddedAt:     s.clock(),
		})
	}

	if err := s.cartRepo.Save(ctx, lines); err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Debug().
		Int("item_id", item.ID).
		Int("quantity", quantity).
		Bool("merged", found).
		Msg("item added to cart")

	return lines, nil
}

// AddByID resolves id against the catalogue and adds it.
func (s *cartService) AddByID(ctx context.Context, id, quantity int) ([]model.CartLine, error) {
	item, ok := s.catalog.GetByID(id)
	if !ok {
		s.logger.Debug().Int("item_id", id).Msg("catalogue item not found")
		return nil, model.ErrItemNotFound
	}
	return s.Add(ctx, item, quantity)
}

// Remove deletes the line for id.
func (s *cartService) Remove(ctx context.Context, id int) ([]model.CartLine, error) {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	kept := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}

	if len(kept) == len(lines) {
		return kept, nil
	}

	if err := s.cartRepo.Save(ctx, kept); err != nil {
		return nil, fmt.Errorf("failed to remove from cart: %w", err)
	}

	s.logger.Debug().Int("item_id", id).Msg("item removed from cart")

	return kept, nil
}

// UpdateQuantity replaces the quantity of the line for id. quantity <= 0 removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, id, quantity int) ([]model.CartLine, error) {
	if quantity <= 0 {
		return s.Remove(ctx, id)
	}

	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	changed := false
	for i := range lines {
		if lines[i].ID == id {
			changed = lines[i].Quantity != quantity
			lines[i].Quantity = quantity
			break
		}
	}

	if !changed {
		return lines, nil
	}

	if err := s.cartRepo.Save(ctx, lines); err != nil {
		return nil, fmt.Errorf("failed to update cart quantity: %w", err)
	}

	s.logger.Debug().Int("item_id", id).Int("quantity", quantity).Msg("cart quantity updated")

	return lines, nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) error {
	if err := s.cartRepo.Save(ctx, []model.CartLine{}); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	s.logger.Debug().Msg("cart cleared")
	return nil
}

// Summary prices the current cart.
func (s *cartService) Summary(ctx context.Context) (pricing.Summary, error) {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return pricing.Summary{}, fmt.Errorf("failed to get cart: %w", err)
	}
	return pricing.Compute(lines), nil
}
