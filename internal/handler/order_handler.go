package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders by checking out the current cart.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Checkout(r.Context(), req.CustomerInfo, req.PaymentMethod)
	if err != nil && order == nil {
		writeServiceError(w, err, h.logger)
		return
	}

	resp := model.OrderResponse{Order: order}
	if err != nil {
		// The order exists; the client still has to know about it.
		h.logger.Error().Err(err).Str("order_id", order.ID).Msg("order recorded but cart not cleared")
		resp.Warning = model.ErrCodeCartNotCleared
	}

	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.History(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if order == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeOrderNotFound, "order not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
