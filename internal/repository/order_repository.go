package repository

import (
	"context"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
)

// orderRepository stores the whole history as one document under order_history.
type orderRepository struct {
	docs collection[[]model.Order]
}

// NewOrderRepository creates an order history repository on the given store.
func NewOrderRepository(store storage.Store, logger zerolog.Logger) OrderRepository {
	return &orderRepository{docs: newCollection[[]model.Order](store, storage.KeyOrderHistory, logger)}
}

// List returns the order history, newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	orders, _, err := r.docs.load(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Save replaces the stored order history.
func (r *orderRepository) Save(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	return r.docs.save(ctx, orders)
}
