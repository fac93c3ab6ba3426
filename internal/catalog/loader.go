package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for catalogue files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON catalogue file. Paths ending in .gz are gunzipped first.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", filePath, err)
	}
	defer file.Close()

	d, err := readDataset(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalogue file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(d.Items)).
		Msg("catalogue file loaded successfully")

	return d, nil
}

// readDataset decodes and validates a dataset, transparently gunzipping when name ends in .gz.
func readDataset(r io.Reader, name string) (*Dataset, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	d, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalogue %s: %w", name, err)
	}
	return d, nil
}

func decode(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// fallbackLoader tries each loader in order until one succeeds.
type fallbackLoader struct {
	loaders []namedLoader
	logger  zerolog.Logger
}

type namedLoader struct {
	name   string
	path   string
	loader Loader
}

// NewFallbackLoader creates a loader that tries S3 (when configured), then the local file
// (when a path is set), then the built-in menu. The path passed to Load is ignored.
func NewFallbackLoader(s3Loader Loader, s3Key string, fileLoader Loader, filePath string, logger zerolog.Logger) Loader {
	l := &fallbackLoader{logger: logger.With().Str("component", "fallback-loader").Logger()}

	if s3Loader != nil {
		l.loaders = append(l.loaders, namedLoader{name: "s3", path: s3Key, loader: s3Loader})
	}
	if fileLoader != nil && filePath != "" {
		l.loaders = append(l.loaders, namedLoader{name: "file", path: filePath, loader: fileLoader})
	}
	l.loaders = append(l.loaders, namedLoader{name: "embedded", loader: NewEmbeddedLoader()})

	return l
}

// Load returns the first dataset any source produces.
func (l *fallbackLoader) Load(ctx context.Context, _ string) (*Dataset, error) {
	var lastErr error
	for _, nl := range l.loaders {
		d, err := nl.loader.Load(ctx, nl.path)
		if err == nil {
			l.logger.Info().Str("source", nl.name).Str("path", nl.path).Msg("catalogue loaded")
			return d, nil
		}

		l.logger.Warn().
			Err(err).
			Str("source", nl.name).
			Str("path", nl.path).
			Msg("failed to load catalogue, trying next source")
		lastErr = err
	}

	return nil, fmt.Errorf("no catalogue source succeeded: %w", lastErr)
}
