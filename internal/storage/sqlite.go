package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

// SQLiteStore implements Store on a local SQLite file, the on-device default.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore opens (or creates) the database at path and applies migrations.
func NewSQLiteStore(ctx context.Context, path string, logger zerolog.Logger) (*SQLiteStore, error) {
	logger = logger.With().Str("store", "sqlite").Logger()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serialises writers on the file.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info().Str("path", path).Msg("sqlite store opened")

	return s, nil
}

func (s *SQLiteStore) runMigrations() error {
	src, err := iofs.New(sqliteMigrations, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("could not load migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Get retrieves the document stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE name = ?`, string(key)).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		s.logger.Error().Err(err).Str("key", string(key)).Msg("failed to query document")
		return nil, false, fmt.Errorf("failed to query document: %w", err)
	}

	return value, true, nil
}

// Set replaces the document stored under key in a single statement.
func (s *SQLiteStore) Set(ctx context.Context, key Key, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	query := `
		INSERT INTO documents (name, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, string(key), value); err != nil {
		s.logger.Error().Err(err).Str("key", string(key)).Msg("failed to write document")
		return fmt.Errorf("failed to write document: %w", err)
	}

	s.logger.Debug().Str("key", string(key)).Int("bytes", len(value)).Msg("document written")

	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
