package service

import (
	"context"
	"time"

	"github.com/CobbyElsonfx/food-delivery-app/internal/catalog"
	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/repository"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Get(ctx context.Context) ([]model.CartLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, lines []model.CartLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, orders []model.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

// MockFavoritesRepository is a mock implementation of FavoritesRepository.
type MockFavoritesRepository struct {
	mock.Mock
}

func (m *MockFavoritesRepository) Get(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockFavoritesRepository) Save(ctx context.Context, items []model.CatalogItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

var fixedTime = time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func sequentialIDs(ids ...string) IDGenerator {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func testItem(id int, price string) model.CatalogItem {
	return model.CatalogItem{
		ID:       id,
		Name:     "Item",
		Price:    decimal.RequireFromString(price),
		Category: "Pizza",
	}
}

func validCustomer() model.CustomerInfo {
	return model.CustomerInfo{
		Name:    "Ada Lovelace",
		Phone:   "555-0100",
		Address: "1 Analytical Way",
		City:    "London",
		ZipCode: "N1 9GU",
	}
}

func defaultProvider() *catalog.Provider {
	d, err := catalog.Default()
	if err != nil {
		panic(err)
	}
	return catalog.NewProvider(d)
}

// memoryServices wires real repositories over a fresh in-memory store.
type memoryServices struct {
	store     *storage.MemoryStore
	cartRepo  repository.CartRepository
	favRepo   repository.FavoritesRepository
	orderRepo repository.OrderRepository
	cart      CartService
	favorites FavoritesService
	orders    OrderService
	profile   ProfileService
}

func newMemoryServices() *memoryServices {
	logger := zerolog.Nop()
	store := storage.NewMemoryStore()
	provider := defaultProvider()

	cartRepo := repository.NewCartRepository(store, logger)
	favRepo := repository.NewFavoritesRepository(store, logger)
	orderRepo := repository.NewOrderRepository(store, logger)
	profileRepo := repository.NewProfileRepository(store, logger)

	return &memoryServices{
		store:     store,
		cartRepo:  cartRepo,
		favRepo:   favRepo,
		orderRepo: orderRepo,
		cart:      NewCartService(cartRepo, provider, fixedClock, logger),
		favorites: NewFavoritesService(favRepo, provider, logger),
		orders:    NewOrderService(orderRepo, cartRepo, sequentialIDs("order-1", "order-2", "order-3"), fixedClock, logger),
		profile:   NewProfileService(profileRepo, favRepo, orderRepo, logger),
	}
}
