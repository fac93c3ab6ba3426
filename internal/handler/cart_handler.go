package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/pricing"
	"github.com/CobbyElsonfx/food-delivery-app/internal/service"

	"github.com/rs/zerolog"
)

// AddItemRequest is the body of POST /api/cart/items.
type AddItemRequest struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

// QuantityRequest is the body of PUT /api/cart/items/{id}.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart together with its priced summary.
type CartResponse struct {
	Items   []model.CartLine `json:"items"`
	Summary pricing.Summary  `json:"summary"`
}

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	lines, err := h.service.Get(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(lines))
}

// Add handles POST /api/cart/items. quantity defaults to 1 when omitted.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	req := AddItemRequest{Quantity: 1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	lines, err := h.service.AddByID(r.Context(), req.ItemID, req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(lines))
}

// UpdateQuantity handles PUT /api/cart/items/{id}.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid item ID", h.logger)
		return
	}

	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	lines, err := h.service.UpdateQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(lines))
}

// Remove handles DELETE /api/cart/items/{id}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid item ID", h.logger)
		return
	}

	lines, err := h.service.Remove(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(lines))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse([]model.CartLine{}))
}

// Summary handles GET /api/cart/summary, rounded to cents for display.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, summary.Rounded())
}

func newCartResponse(lines []model.CartLine) CartResponse {
	return CartResponse{Items: lines, Summary: pricing.Compute(lines).Rounded()}
}
