//go:build ignore

// inspect_store opens the store configured by the environment and prints the
// size of every collection document.
//
//	STORAGE_DRIVER=sqlite SQLITE_PATH=data/food-delivery.db go run scripts/inspect_store.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/CobbyElsonfx/food-delivery-app/internal/config"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s store: %v\n", cfg.Storage.Driver, err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Connected to %s store\n", cfg.Storage.Driver)

	for _, key := range storage.Keys {
		value, found, err := store.Get(ctx, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Get %s failed: %v\n", key, err)
			os.Exit(1)
		}
		if !found {
			fmt.Printf("  %-14s (absent)\n", key)
			continue
		}
		fmt.Printf("  %-14s %d bytes\n", key, len(value))
	}
}
