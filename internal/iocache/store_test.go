package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/folio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T, table string) *CacheStoreImpl {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.db")
	store, err := NewCacheStore(table, schema.SQLiteBackend, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

func TestCacheStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t, PreferencesTable)

	_, _, _, err := store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	now := time.Now().Unix()
	require.NoError(t, store.Set("colorScheme", []byte("dark"), 1, now))

	value, version, ts, err := store.Get("colorScheme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)

	// Upsert replaces the existing row
	require.NoError(t, store.Set("colorScheme", []byte("light"), 2, now+1))
	value, version, _, err = store.Get("colorScheme")
	require.NoError(t, err)
	assert.Equal(t, []byte("light"), value)
	assert.Equal(t, 2, version)

	require.NoError(t, store.Delete("colorScheme"))
	require.NoError(t, store.Delete("colorScheme"))
	_, _, _, err = store.Get("colorScheme")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCacheStoreStatus(t *testing.T) {
	store := newSQLiteStore(t, DatasetTable)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, DatasetTable, status.Table)
	assert.Zero(t, status.TotalEntries)

	require.NoError(t, store.Set("a", []byte("1"), 1, 100))
	require.NoError(t, store.Set("b", []byte("2"), 1, 200))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, int64(200), status.LastEntryTime.Unix())
	assert.Equal(t, int64(100), status.OldestEntryTime.Unix())
	assert.Positive(t, status.TableSizeBytes)
}

func TestNoneBackendStore(t *testing.T) {
	store, err := NewCacheStore(PreferencesTable, schema.NoneBackend, "")
	require.NoError(t, err)

	assert.NoError(t, store.Set("k", []byte("v"), 1, 1))
	_, _, _, err = store.Get("k")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, store.Delete("k"))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestNewCacheStoreErrors(t *testing.T) {
	t.Run("invalid table name", func(t *testing.T) {
		_, err := NewCacheStore("prefs; DROP TABLE x", schema.SQLiteBackend, "")
		assert.ErrorContains(t, err, "invalid table name")
	})

	t.Run("unsupported backend", func(t *testing.T) {
		_, err := NewCacheStore(PreferencesTable, schema.DatabaseBackend("redis"), "")
		assert.ErrorContains(t, err, "unsupported store backend")
	})
}

func TestQueryBuilders(t *testing.T) {
	tests := []struct {
		backend     schema.DatabaseBackend
		quoted      string
		placeholder string
		upsert      string
	}{
		{schema.SQLiteBackend, `"t"`, "?", "INSERT OR REPLACE"},
		{schema.MySQLBackend, "`t`", "?", "ON DUPLICATE KEY UPDATE"},
		{schema.PostgreSQLBackend, `"t"`, "$1", "ON CONFLICT (cache_key)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			ps := &CacheStoreImpl{tableName: "t", backend: tt.backend}
			assert.Equal(t, tt.quoted, quoteTableName("t", tt.backend))
			assert.Equal(t, tt.placeholder, ps.getPlaceholder())
			assert.Contains(t, ps.getUpsertQuery(), tt.upsert)
			assert.Contains(t, getCreateTableQuery("t", tt.backend), "CREATE TABLE IF NOT EXISTS "+tt.quoted)
		})
	}
}
