package handler

import (
	"net/http"
	"strconv"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles catalogue HTTP requests.
type CatalogHandler struct {
	catalog service.Catalog
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(catalog service.Catalog, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/catalog/items.
// Filters, in priority order: q (search), category (exact), popular=true, vegetarian=true.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var items []model.CatalogItem
	switch {
	case query.Get("q") != "":
		items = h.catalog.Search(query.Get("q"))
	case query.Get("category") != "":
		items = h.catalog.ListByCategory(query.Get("category"))
	case isTrue(query.Get("popular")):
		items = h.catalog.ListPopular()
	case isTrue(query.Get("vegetarian")):
		items = h.catalog.ListVegetarian()
	default:
		items = h.catalog.ListAll()
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/catalog/items/{id}.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid item ID", h.logger)
		return
	}

	item, found := h.catalog.GetByID(id)
	if !found {
		writeError(w, http.StatusNotFound, model.ErrCodeItemNotFound, "item not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Categories handles GET /api/catalog/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.ListCategories())
}

func isTrue(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
