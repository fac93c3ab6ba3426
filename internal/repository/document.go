package repository

import (
	"context"
	"encoding/json"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
)

// collection reads and writes one JSON document of type T under a fixed key.
type collection[T any] struct {
	store  storage.Store
	key    storage.Key
	logger zerolog.Logger
}

func newCollection[T any](store storage.Store, key storage.Key, logger zerolog.Logger) collection[T] {
	return collection[T]{
		store:  store,
		key:    key,
		logger: logger.With().Str("repository", string(key)).Logger(),
	}
}

// load decodes the stored document. found is false when nothing was stored yet.
func (c collection[T]) load(ctx context.Context) (value T, found bool, err error) {
	data, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to read document")
		return value, false, &model.StorageError{Op: "read", Key: string(c.key), Err: err}
	}
	if !found || len(data) == 0 {
		return value, false, nil
	}

	if err := json.Unmarshal(data, &value); err != nil {
		c.logger.Error().Err(err).Msg("failed to decode document")
		return value, false, &model.StorageError{Op: "decode", Key: string(c.key), Err: err}
	}

	return value, true, nil
}

// save encodes value and replaces the stored document. Nothing is written if encoding fails.
func (c collection[T]) save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode document")
		return &model.StorageError{Op: "encode", Key: string(c.key), Err: err}
	}

	if err := c.store.Set(ctx, c.key, data); err != nil {
		c.logger.Error().Err(err).Msg("failed to write document")
		return &model.StorageError{Op: "write", Key: string(c.key), Err: err}
	}

	c.logger.Debug().Int("bytes", len(data)).Msg("document saved")

	return nil
}
