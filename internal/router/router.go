package router

import (
	"net/http"

	"github.com/CobbyElsonfx/food-delivery-app/internal/handler"
	"github.com/CobbyElsonfx/food-delivery-app/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Catalog   *handler.CatalogHandler
	Cart      *handler.CartHandler
	Favorites *handler.FavoritesHandler
	Orders    *handler.OrderHandler
	Profile   *handler.ProfileHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Applied outermost first: RequestID -> Recovery -> Logging -> CORS
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/items", h.Catalog.List)
			r.Get("/items/{id}", h.Catalog.GetByID)
			r.Get("/categories", h.Catalog.Categories)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Delete("/", h.Cart.Clear)
			r.Get("/summary", h.Cart.Summary)
			r.Post("/items", h.Cart.Add)
			r.Put("/items/{id}", h.Cart.UpdateQuantity)
			r.Delete("/items/{id}", h.Cart.Remove)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.Favorites.List)
			r.Put("/{id}", h.Favorites.Add)
			r.Delete("/{id}", h.Favorites.Remove)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.Orders.Create)
			r.Get("/", h.Orders.List)
			r.Get("/{id}", h.Orders.GetByID)
			r.Put("/{id}/status", h.Orders.UpdateStatus)
		})

		r.Get("/profile", h.Profile.Get)
		r.Put("/profile", h.Profile.Save)
	})

	return otelhttp.NewHandler(r, "food-delivery-api")
}
