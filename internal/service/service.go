package service

import (
	"context"
	"time"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/pricing"

	"github.com/google/uuid"
)

// Catalog is the read-only view of the menu the services depend on.
// *catalog.Provider satisfies it.
type Catalog interface {
	ListAll() []model.CatalogItem
	ListCategories() []model.Category
	GetByID(id int) (model.CatalogItem, bool)
	ListByCategory(name string) []model.CatalogItem
	Search(query string) []model.CatalogItem
	ListPopular() []model.CatalogItem
	ListVegetarian() []model.CatalogItem
}

// Clock returns the current time.
type Clock func() time.Time

// IDGenerator returns a fresh unique order id.
type IDGenerator func() string

// DefaultClock returns the wall clock in UTC.
func DefaultClock() time.Time {
	return time.Now().UTC()
}

// DefaultIDGenerator returns a random UUID string.
func DefaultIDGenerator() string {
	return uuid.NewString()
}

// CartService defines operations on the persisted cart.
type CartService interface {
	// Get returns the current cart lines in insertion order.
	Get(ctx context.Context) ([]model.CartLine, error)

	// Add inserts item or increments its existing line by quantity.
	Add(ctx context.Context, item model.CatalogItem, quantity int) ([]model.CartLine, error)

	// AddByID resolves id against the catalogue and adds it.
	AddByID(ctx context.Context, id, quantity int) ([]model.CartLine, error)

	// Remove deletes the line for id. Removing an absent id is a no-op.
	Remove(ctx context.Context, id int) ([]model.CartLine, error)

	// UpdateQuantity sets the quantity of the line for id; quantity <= 0 removes it.
	UpdateQuantity(ctx context.Context, id, quantity int) ([]model.CartLine, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// Summary prices the current cart.
	Summary(ctx context.Context) (pricing.Summary, error)
}

// FavoritesService defines operations on the favorites collection.
type FavoritesService interface {
	// List returns every favorited item snapshot.
	List(ctx context.Context) ([]model.CatalogItem, error)

	// Add stores a snapshot of item unless its id is already a favorite.
	Add(ctx context.Context, item model.CatalogItem) ([]model.CatalogItem, error)

	// AddByID resolves id against the catalogue and adds it.
	AddByID(ctx context.Context, id int) ([]model.CatalogItem, error)

	// Remove deletes the favorite with id. Removing an absent id is a no-op.
	Remove(ctx context.Context, id int) ([]model.CatalogItem, error)

	// IsFavorite reports whether id is a favorite.
	IsFavorite(ctx context.Context, id int) (bool, error)

	// Toggle adds or removes item and reports whether it is now a favorite.
	Toggle(ctx context.Context, item model.CatalogItem) (bool, error)
}

// OrderService defines checkout and order history operations.
type OrderService interface {
	// PlaceOrder records an order for lines and clears the cart once the order is stored.
	PlaceOrder(ctx context.Context, lines []model.CartLine, customer model.CustomerInfo, payment model.PaymentMethod) (*model.Order, error)

	// Checkout places an order for the current cart contents.
	Checkout(ctx context.Context, customer model.CustomerInfo, payment model.PaymentMethod) (*model.Order, error)

	// History returns every recorded order, newest first.
	History(ctx context.Context) ([]model.Order, error)

	// GetByID returns the order with id, or nil if there is none.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// UpdateStatus changes the status of a recorded order.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// ProfileService defines operations on the optional user profile.
type ProfileService interface {
	// Get returns the stored profile, or nil if none was saved.
	Get(ctx context.Context) (*model.UserProfile, error)

	// Save validates and stores the profile.
	Save(ctx context.Context, profile model.UserProfile) (*model.UserProfile, error)

	// Stats counts favorites and recorded orders.
	Stats(ctx context.Context) (model.ProfileStats, error)
}
