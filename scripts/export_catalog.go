//go:build ignore

// export_catalog writes the built-in menu as a gzipped JSON file suitable for
// CATALOG_FILE or for uploading to the S3 bucket read at startup.
//
//	go run scripts/export_catalog.go [output path]
package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/CobbyElsonfx/food-delivery-app/internal/catalog"
)

func main() {
	outPath := "data/catalog/catalog.json.gz"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	dataset, err := catalog.Default()
	if err != nil {
		log.Fatalf("Failed to load built-in catalogue: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	if err := writeGzipJSON(outPath, dataset); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}

	fmt.Printf("Wrote %s with %d categories and %d items\n", outPath, len(dataset.Categories), len(dataset.Items))
}

func writeGzipJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)

	encoder := json.NewEncoder(gzipWriter)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		gzipWriter.Close()
		return err
	}

	return gzipWriter.Close()
}
