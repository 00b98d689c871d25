package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, err := testDSN(ctx)
	if err != nil {
		fmt.Printf("Failed to prepare test database: %v\n", err)
		os.Exit(1)
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err == nil {
		err = initializeTestDatabase(testDB)
	}
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

// testDSN uses an external database when TEST_DB_HOST is set, otherwise it starts a container
func testDSN(ctx context.Context) (string, error) {
	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost,
			envOrDefault("TEST_DB_PORT", "5432"),
			envOrDefault("TEST_DB_USER", "postgres"),
			envOrDefault("TEST_DB_PASSWORD", "postgres"),
			envOrDefault("TEST_DB_NAME", "test_db"))
		fmt.Printf("Using external database: %s\n", dbHost)
		return dsn, nil
	}

	var err error
	pgContainer, err = postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminateContainer(ctx)
		return "", fmt.Errorf("failed to get connection string: %w", err)
	}

	return dsn, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

// initializeTestDatabase runs the schema initialization
func initializeTestDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// initPGTestDB wraps each test in a transaction that is rolled back on cleanup
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// cleanupPGTestDB is a no-op, the rollback in initPGTestDB restores the state
func cleanupPGTestDB(t *testing.T) {}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	RunStoreTests(t, initPGTestDB, cleanupPGTestDB)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	maxOpen, maxIdle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	require.Equal(t, 10, maxOpen)
	require.Equal(t, 2, maxIdle)
	require.Equal(t, 5*time.Minute, lifetime)
	require.Equal(t, 10*time.Minute, idleTime)

	maxOpen, maxIdle, _, _ = NormalizeConnectionPoolSettings(4, 8, time.Minute, time.Minute)
	require.Equal(t, 4, maxOpen)
	require.Equal(t, 4, maxIdle)
}
