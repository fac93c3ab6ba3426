package handler

import (
	"net/http"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/service"

	"github.com/rs/zerolog"
)

// FavoritesHandler handles favorites HTTP requests.
type FavoritesHandler struct {
	service service.FavoritesService
	logger  zerolog.Logger
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(service service.FavoritesService, logger zerolog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
		logger:  logger.With().Str("handler", "favorites").Logger(),
	}
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles PUT /api/favorites/{id}. Adding twice is a no-op.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid item ID", h.logger)
		return
	}

	items, err := h.service.AddByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Remove handles DELETE /api/favorites/{id}.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid item ID", h.logger)
		return
	}

	items, err := h.service.Remove(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
