package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/pricing"
	"github.com/CobbyElsonfx/food-delivery-app/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	newID     IDGenerator
	clock     Clock
	logger    zerolog.Logger
}

// NewOrderService creates a new order service. Nil generators use the defaults.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	newID IDGenerator,
	clock Clock,
	logger zerolog.Logger,
) OrderService {
	if newID == nil {
		newID = DefaultIDGenerator
	}
	if clock == nil {
		clock = DefaultClock
	}
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		newID:     newID,
		clock:     clock,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder validates the checkout, records the order at the head of the history and
// then clears the cart. The cart is left untouched if the history write fails. If the
// history write succeeds but clearing the cart fails, the recorded order is returned
// together with the error.
func (s *orderService) PlaceOrder(
	ctx context.Context,
	lines []model.CartLine,
	customer model.CustomerInfo,
	payment model.PaymentMethod,
) (*model.Order, error) {
	if err := s.validateCheckout(lines, customer, payment); err != nil {
		return nil, err
	}

	history, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read order history")
		return nil, fmt.Errorf("failed to read order history: %w", err)
	}

	summary := pricing.Compute(lines)
	order := model.Order{
		ID:            s.newID(),
		Items:         model.CloneLines(lines),
		CustomerInfo:  customer,
		PaymentMethod: payment,
		Subtotal:      summary.Subtotal,
		DeliveryFee:   summary.DeliveryFee,
		Tax:           summary.Tax,
		Total:         summary.Total,
		OrderDate:     s.clock(),
		Status:        model.OrderCompleted,
	}

	updated := make([]model.Order, 0, len(history)+1)
	updated = append(updated, order)
	updated = append(updated, history...)

	if err := s.orderRepo.Save(ctx, updated); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to record order, cart kept")
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err := s.cartRepo.Save(ctx, []model.CartLine{}); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("order recorded but cart not cleared")
		return &order, fmt.Errorf("order %s recorded but cart not cleared: %w", order.ID, err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", pricing.ItemCount(order.Items)).
		Str("total", order.Total.StringFixed(2)).
		Str("payment_method", string(payment)).
		Msg("order placed successfully")

	return &order, nil
}

// Checkout places an order for the current cart contents.
func (s *orderService) Checkout(ctx context.Context, customer model.CustomerInfo, payment model.PaymentMethod) (*model.Order, error) {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read cart for checkout")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return s.PlaceOrder(ctx, lines, customer, payment)
}

// History returns every recorded order, newest first.
func (s *orderService) History(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}
	return orders, nil
}

// GetByID returns the order with id, or nil if there is none.
func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}

	s.logger.Debug().Str("order_id", id).Msg("order not found")
	return nil, nil
}

// UpdateStatus changes the status of a recorded order. Items and amounts are never touched.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, model.NewValidationError("status", "must be pending, completed, or cancelled")
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}

		if orders[i].Status == status {
			return &orders[i], nil
		}

		previous := orders[i].Status
		orders[i].Status = status
		if err := s.orderRepo.Save(ctx, orders); err != nil {
			return nil, fmt.Errorf("failed to update order status: %w", err)
		}

		s.logger.Info().
			Str("order_id", id).
			Str("from", string(previous)).
			Str("to", string(status)).
			Msg("order status updated")

		return &orders[i], nil
	}

	return nil, model.ErrOrderNotFound
}

// validateCheckout checks the cart and every required customer field, in form order.
func (s *orderService) validateCheckout(lines []model.CartLine, customer model.CustomerInfo, payment model.PaymentMethod) error {
	if len(lines) == 0 {
		s.logger.Warn().Msg("checkout attempted with empty cart")
		return model.NewValidationError("items", "cart is empty")
	}

	required := []struct {
		field string
		value string
	}{
		{"name", customer.Name},
		{"phone", customer.Phone},
		{"address", customer.Address},
		{"city", customer.City},
		{"zipCode", customer.ZipCode},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			s.logger.Warn().Str("field", r.field).Msg("missing required customer field")
			return model.NewValidationError(r.field, "is required")
		}
	}

	if !payment.Valid() {
		s.logger.Warn().Str("payment_method", string(payment)).Msg("invalid payment method")
		return model.NewValidationError("paymentMethod", "must be cash or card")
	}

	return nil
}
