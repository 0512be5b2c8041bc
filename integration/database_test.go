//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestFolioWithMySQL tests the folio CLI with a MySQL backend.
func TestFolioWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "folio",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/folio", host, port.Port())
	runStoreWorkflow(t, "mysql", connStr)
}

// TestFolioWithPostgres tests the folio CLI with a PostgreSQL backend.
func TestFolioWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
	runStoreWorkflow(t, "postgresql", connStr)
}

// runStoreWorkflow migrates, fills, inspects and clears the stores of a backend.
func runStoreWorkflow(t *testing.T, backend, connStr string) {
	t.Setenv("FOLIO_STORE_BACKEND", backend)
	t.Setenv("FOLIO_STORE_DB_CONNECT", connStr)

	// Fresh database: migrations create both tables
	_, err := runFolio(t, "store", "migrate")
	require.NoError(t, err)

	// Theme preference round trip
	_, err = runFolio(t, "theme", "set", "dark")
	require.NoError(t, err)
	out, err := runFolio(t, "theme", "get", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"colorScheme": "dark"`)

	// First run parses the CSV and caches it, second run reads the cache
	first, err := runFolio(t, "commits", "--output", "json")
	require.NoError(t, err)
	second, err := runFolio(t, "commits", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, first, second)

	out, err = runFolio(t, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "folio_preferences")
	assert.Contains(t, out, "folio_dataset_cache")
	assert.Contains(t, out, "Total Entries: 1")

	_, err = runFolio(t, "store", "clear")
	require.NoError(t, err)

	// A cleared store falls back to the automatic scheme
	out, err = runFolio(t, "theme", "get", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"colorScheme": "light dark"`)
}
