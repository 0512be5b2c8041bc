// Package iocache is for persisting preferences and cached datasets.
package iocache

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// CacheStoreImpl handles durable key/value storage using various database backends.
type CacheStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.CacheStore = &CacheStoreImpl{} // Compile-time check

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// driverFor returns the database/sql driver name of a backend.
func driverFor(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite"
	case schema.MySQLBackend:
		return "mysql"
	case schema.PostgreSQLBackend:
		return "pgx"
	default:
		return ""
	}
}

// openDB opens and pings the database of a backend.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	driverName := driverFor(backend)
	if driverName == "" {
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	dsn := connStr
	if backend == schema.SQLiteBackend && dsn == "" {
		dsn = GetDBFilePath()
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		switch backend {
		case schema.SQLiteBackend:
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dsn, err)
		case schema.MySQLBackend:
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		default:
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// NewCacheStore initializes and returns a new CacheStore based on the backend type.
func NewCacheStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.CacheStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	if backend == schema.NoneBackend {
		// Return a no-op store for disabled persistence
		return &CacheStoreImpl{tableName: tableName, backend: backend, connStr: connStr}, nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(getCreateTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &CacheStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverFor(backend),
		connStr:    connStr,
	}, nil
}

// validateTableName rejects anything that is not a plain SQL identifier.
func validateTableName(tableName string) error {
	if !tableNamePattern.MatchString(tableName) {
		return fmt.Errorf("invalid table name %q", tableName)
	}
	return nil
}

// quoteTableName quotes an identifier for the backend.
func quoteTableName(tableName string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + tableName + "`"
	}
	return `"` + tableName + `"`
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key VARCHAR(255) PRIMARY KEY,
				cache_value LONGBLOB NOT NULL,
				cache_version INT NOT NULL,
				cache_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BYTEA NOT NULL,
				cache_version INTEGER NOT NULL,
				cache_timestamp BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BLOB NOT NULL,
				cache_version INTEGER NOT NULL,
				cache_timestamp INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// Get retrieves a value by key from the store.
func (ps *CacheStoreImpl) Get(key string) ([]byte, int, int64, error) {
	// Return not found error for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, 0, 0, sql.ErrNoRows
	}

	var value []byte
	var version int
	var ts int64

	query := fmt.Sprintf(`SELECT cache_value, cache_version, cache_timestamp FROM %s WHERE cache_key = %s`,
		quoteTableName(ps.tableName, ps.backend), ps.getPlaceholder())
	if err := ps.db.QueryRow(query, key).Scan(&value, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces a key/value pair in the store.
func (ps *CacheStoreImpl) Set(key string, value []byte, version int, timestamp int64) error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}
	_, err := ps.db.Exec(ps.getUpsertQuery(), key, value, version, timestamp)
	return err
}

// Delete removes a key from the store. Missing keys are not an error.
func (ps *CacheStoreImpl) Delete(key string) error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE cache_key = %s`, quoteTableName(ps.tableName, ps.backend), ps.getPlaceholder())
	_, err := ps.db.Exec(query, key)
	return err
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ps *CacheStoreImpl) getPlaceholder() string {
	switch ps.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *CacheStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, cache_version, cache_timestamp) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE cache_value = new.cache_value, cache_version = new.cache_version, cache_timestamp = new.cache_timestamp`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, cache_version, cache_timestamp) VALUES ($1, $2, $3, $4)
			ON CONFLICT (cache_key) DO UPDATE SET cache_value = EXCLUDED.cache_value, cache_version = EXCLUDED.cache_version, cache_timestamp = EXCLUDED.cache_timestamp`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, cache_value, cache_version, cache_timestamp) VALUES (?, ?, ?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ps *CacheStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// GetStatus returns status information about the store table.
func (ps *CacheStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(ps.backend),
		Table:     ps.tableName,
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := ps.db.QueryRow(countQuery).Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	rangeQuery := fmt.Sprintf("SELECT MAX(cache_timestamp), MIN(cache_timestamp) FROM %s", quotedTableName)
	if err := ps.db.QueryRow(rangeQuery).Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get entry time range: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	status.TableSizeBytes = ps.estimateSize(status.TotalEntries)
	return status, nil
}

// estimateSize returns the table size in bytes, falling back to a rough per-row estimate.
func (ps *CacheStoreImpl) estimateSize(entries int) int64 {
	fallback := int64(entries) * 1000
	var size int64

	switch ps.backend {
	case schema.SQLiteBackend:
		// For SQLite, use page_count * page_size of the whole file
		row := ps.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
		if err := row.Scan(&size); err != nil {
			return 0
		}
		return size

	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(ps.connStr)
		if err != nil || cfg.DBName == "" {
			return fallback
		}
		row := ps.db.QueryRow("SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?", cfg.DBName, ps.tableName)
		if err := row.Scan(&size); err != nil {
			return fallback
		}
		return size

	case schema.PostgreSQLBackend:
		if err := ps.db.QueryRow("SELECT pg_total_relation_size($1)", ps.tableName).Scan(&size); err != nil {
			return fallback
		}
		return size

	default:
		return fallback
	}
}
