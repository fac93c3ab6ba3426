package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/CobbyElsonfx/food-delivery-app/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Open creates the store selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Store, error) {
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("opening document store")

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil

	case config.DriverSQLite:
		return NewSQLiteStore(ctx, cfg.Storage.SQLitePath, logger)

	case config.DriverPostgres:
		pool, err := NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		s := NewPostgresStore(pool, logger)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return NewRedisStore(client, cfg.Redis.Prefix, logger), nil

	case config.DriverMongo:
		return ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, logger)
	}

	return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
}

// NewPool creates a PostgreSQL connection pool and verifies connectivity.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
