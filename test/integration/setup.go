package integration

import (
	"context"
	"testing"
	"time"

	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestPostgres represents a PostgreSQL-backed document store under test.
type TestPostgres struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Store     *storage.PostgresStore
}

// SetupPostgresStore starts a PostgreSQL container and returns a store with its schema applied.
func SetupPostgresStore(t *testing.T) *TestPostgres {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	store := storage.NewPostgresStore(pool, zerolog.Nop())
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestPostgres{
		Container: postgresContainer,
		Pool:      pool,
		Store:     store,
	}
}

// CleanupPostgres deletes every stored document.
func CleanupPostgres(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM documents"); err != nil {
		t.Logf("failed to clean documents: %v", err)
	}
}

// SetupMongoStore starts a MongoDB container and returns a connected store.
func SetupMongoStore(t *testing.T) *storage.MongoStore {
	t.Helper()

	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	store, err := storage.ConnectMongo(ctx, uri, "testdb", zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return store
}
