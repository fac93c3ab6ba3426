package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCustomer() model.CustomerInfo {
	return model.CustomerInfo{
		Name:    "Ada Lovelace",
		Phone:   "555-0100",
		Address: "1 Analytical Way",
		City:    "London",
		ZipCode: "N1 9GU",
	}
}

func testOrder() *model.Order {
	return &model.Order{
		ID:            "order-1",
		Items:         []model.CartLine{{CatalogItem: testItem(1, "10"), Quantity: 2}},
		CustomerInfo:  testCustomer(),
		PaymentMethod: model.PaymentCash,
		Subtotal:      decimal.RequireFromString("20"),
		DeliveryFee:   decimal.RequireFromString("3.99"),
		Tax:           decimal.RequireFromString("1.6"),
		Total:         decimal.RequireFromString("25.59"),
		OrderDate:     time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC),
		Status:        model.OrderCompleted,
	}
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name            string
		requestBody     interface{}
		mockSetup       func(*MockOrderService)
		expectedStatus  int
		expectedCode    string
		expectedField   string
		expectedWarning string
	}{
		{
			name:        "Success",
			requestBody: model.OrderRequest{CustomerInfo: testCustomer(), PaymentMethod: model.PaymentCash},
			mockSetup: func(m *MockOrderService) {
				m.On("Checkout", mock.Anything, testCustomer(), model.PaymentCash).Return(testOrder(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:        "Missing customer field",
			requestBody: model.OrderRequest{PaymentMethod: model.PaymentCard},
			mockSetup: func(m *MockOrderService) {
				m.On("Checkout", mock.Anything, model.CustomerInfo{}, model.PaymentCard).
					Return(nil, model.NewValidationError("name", "is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
			expectedField:  "name",
		},
		{
			name:        "Empty cart",
			requestBody: model.OrderRequest{CustomerInfo: testCustomer(), PaymentMethod: model.PaymentCash},
			mockSetup: func(m *MockOrderService) {
				m.On("Checkout", mock.Anything, testCustomer(), model.PaymentCash).
					Return(nil, model.NewValidationError("items", "cart is empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeEmptyCart,
			expectedField:  "items",
		},
		{
			name:        "Order recorded but cart not cleared",
			requestBody: model.OrderRequest{CustomerInfo: testCustomer(), PaymentMethod: model.PaymentCash},
			mockSetup: func(m *MockOrderService) {
				storageErr := &model.StorageError{Op: "write", Key: "cart", Err: errors.New("disk full")}
				m.On("Checkout", mock.Anything, testCustomer(), model.PaymentCash).Return(testOrder(), storageErr)
			},
			expectedStatus:  http.StatusCreated,
			expectedWarning: model.ErrCodeCartNotCleared,
		},
		{
			name:        "Unexpected failure",
			requestBody: model.OrderRequest{CustomerInfo: testCustomer(), PaymentMethod: model.PaymentCash},
			mockSetup: func(m *MockOrderService) {
				m.On("Checkout", mock.Anything, testCustomer(), model.PaymentCash).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.mockSetup(mockService)

			h := NewOrderHandler(mockService, logger)
			w := serve(t, http.MethodPost, "/api/orders", "/api/orders", tt.requestBody, h.Create)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				resp := decodeError(t, w)
				assert.Equal(t, tt.expectedCode, resp.Error)
				assert.Equal(t, tt.expectedField, resp.Field)
			} else {
				var resp struct {
					model.Order
					Warning string `json:"warning"`
				}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "order-1", resp.ID)
				assert.Equal(t, "25.59", resp.Total.StringFixed(2))
				assert.Equal(t, tt.expectedWarning, resp.Warning)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		orderID        string
		mockSetup      func(*MockOrderService)
		expectedStatus int
	}{
		{
			name:    "Found",
			orderID: "order-1",
			mockSetup: func(m *MockOrderService) {
				m.On("GetByID", mock.Anything, "order-1").Return(testOrder(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Not found",
			orderID: "missing",
			mockSetup: func(m *MockOrderService) {
				m.On("GetByID", mock.Anything, "missing").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.mockSetup(mockService)

			h := NewOrderHandler(mockService, logger)
			w := serve(t, http.MethodGet, "/api/orders/{id}", "/api/orders/"+tt.orderID, nil, h.GetByID)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_List(t *testing.T) {
	mockService := new(MockOrderService)
	mockService.On("History", mock.Anything).Return([]model.Order{*testOrder()}, nil)

	h := NewOrderHandler(mockService, zerolog.Nop())
	w := serve(t, http.MethodGet, "/api/orders", "/api/orders", nil, h.List)

	assert.Equal(t, http.StatusOK, w.Code)

	var orders []model.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, model.PaymentCash, orders[0].PaymentMethod)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		cancelled := testOrder()
		cancelled.Status = model.OrderCancelled

		mockService := new(MockOrderService)
		mockService.On("UpdateStatus", mock.Anything, "order-1", model.OrderCancelled).Return(cancelled, nil)

		h := NewOrderHandler(mockService, logger)
		w := serve(t, http.MethodPut, "/api/orders/{id}/status", "/api/orders/order-1/status",
			model.StatusRequest{Status: model.OrderCancelled}, h.UpdateStatus)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
	})

	t.Run("Unknown order", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("UpdateStatus", mock.Anything, "nope", model.OrderPending).Return(nil, model.ErrOrderNotFound)

		h := NewOrderHandler(mockService, logger)
		w := serve(t, http.MethodPut, "/api/orders/{id}/status", "/api/orders/nope/status",
			model.StatusRequest{Status: model.OrderPending}, h.UpdateStatus)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, model.ErrCodeOrderNotFound, decodeError(t, w).Error)
	})
}
