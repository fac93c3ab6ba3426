package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CobbyElsonfx/food-delivery-app/internal/catalog"
	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/pricing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context) ([]model.CartLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, item model.CatalogItem, quantity int) ([]model.CartLine, error) {
	args := m.Called(ctx, item, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartService) AddByID(ctx context.Context, id, quantity int) ([]model.CartLine, error) {
	args := m.Called(ctx, id, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, id int) ([]model.CartLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, id, quantity int) ([]model.CartLine, error) {
	args := m.Called(ctx, id, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartLine), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartService) Summary(ctx context.Context) (pricing.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.Summary), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, lines []model.CartLine, customer model.CustomerInfo, payment model.PaymentMethod) (*model.Order, error) {
	args := m.Called(ctx, lines, customer, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Checkout(ctx context.Context, customer model.CustomerInfo, payment model.PaymentMethod) (*model.Order, error) {
	args := m.Called(ctx, customer, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) History(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func testItem(id int, price string) model.CatalogItem {
	return model.CatalogItem{
		ID:       id,
		Name:     "Item",
		Price:    decimal.RequireFromString(price),
		Category: "Pizza",
	}
}

func defaultProvider(t *testing.T) *catalog.Provider {
	t.Helper()
	d, err := catalog.Default()
	require.NoError(t, err)
	return catalog.NewProvider(d)
}

// serve routes a single request through a chi router so URL params resolve.
func serve(t *testing.T, method, pattern, target string, body interface{}, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}
