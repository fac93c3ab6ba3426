package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CobbyElsonfx/food-delivery-app/internal/catalog"
	"github.com/CobbyElsonfx/food-delivery-app/internal/config"
	"github.com/CobbyElsonfx/food-delivery-app/internal/handler"
	"github.com/CobbyElsonfx/food-delivery-app/internal/repository"
	"github.com/CobbyElsonfx/food-delivery-app/internal/router"
	"github.com/CobbyElsonfx/food-delivery-app/internal/service"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting food delivery API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataset, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	provider := catalog.NewProvider(dataset)

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	// Initialize repositories
	cartRepo := repository.NewCartRepository(store, logger)
	favoritesRepo := repository.NewFavoritesRepository(store, logger)
	orderRepo := repository.NewOrderRepository(store, logger)
	profileRepo := repository.NewProfileRepository(store, logger)

	// Initialize services
	cartService := service.NewCartService(cartRepo, provider, nil, logger)
	favoritesService := service.NewFavoritesService(favoritesRepo, provider, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, nil, nil, logger)
	profileService := service.NewProfileService(profileRepo, favoritesRepo, orderRepo, logger)

	mux := router.New(router.Handlers{
		Catalog:   handler.NewCatalogHandler(provider, logger),
		Cart:      handler.NewCartHandler(cartService, logger),
		Favorites: handler.NewFavoritesHandler(favoritesService, logger),
		Orders:    handler.NewOrderHandler(orderService, logger),
		Profile:   handler.NewProfileHandler(profileService, logger),
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("storage", cfg.Storage.Driver).
			Int("catalog_items", len(dataset.Items)).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog picks the menu from S3, then CATALOG_FILE, then the built-in dataset.
func loadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Dataset, error) {
	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		l, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 loader, skipping S3")
		} else {
			s3Loader = l
		}
	}

	loader := catalog.NewFallbackLoader(s3Loader, cfg.S3.Key, catalog.NewFileLoader(logger), cfg.Catalog.FilePath, logger)
	return loader.Load(ctx, "")
}
