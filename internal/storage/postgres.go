package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PostgresSchema creates the documents table used by PostgresStore.
const PostgresSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		name       VARCHAR(50) PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

// PostgresStore implements Store on a PostgreSQL table.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed store on an existing pool.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}

// EnsureSchema creates the documents table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, PostgresSchema); err != nil {
		s.logger.Error().Err(err).Msg("failed to create schema")
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Get retrieves the document stored under key.
func (s *PostgresStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM documents WHERE name = $1`, string(key)).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Str("key", string(key)).Msg("document not found")
			return nil, false, nil
		}
		s.logger.Error().Err(err).Str("key", string(key)).Msg("failed to query document")
		return nil, false, fmt.Errorf("failed to query document: %w", err)
	}

	return value, true, nil
}

// Set replaces the document stored under key in a single upsert.
func (s *PostgresStore) Set(ctx context.Context, key Key, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	query := `
		INSERT INTO documents (name, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, string(key), value); err != nil {
		s.logger.Error().Err(err).Str("key", string(key)).Msg("failed to write document")
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

// Close closes the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
