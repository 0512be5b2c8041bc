package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
)

// Table names used by the stores.
const (
	PreferencesTable = "folio_preferences"
	DatasetTable     = "folio_dataset_cache"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for store data.
func GetDBFilePath() string {
	return contract.GetStoreDBFilePath()
}

// InitStores initializes the global manager with preference and dataset stores.
// An empty backend leaves both stores unset.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		if backend == "" {
			return
		}

		preferences, err := NewCacheStore(PreferencesTable, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize preference store: %w", err)
			return
		}

		dataset, err := NewCacheStore(DatasetTable, backend, connStr)
		if err != nil {
			_ = preferences.Close()
			initErr = fmt.Errorf("failed to initialize dataset store: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.preferences = preferences
		Manager.dataset = dataset
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.preferences != nil {
			_ = Manager.preferences.Close()
		}
		if Manager.dataset != nil {
			_ = Manager.dataset.Close()
		}
	})
}

// ClearStores clears all stored data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the tables.
// For NoneBackend, it does nothing.
func ClearStores(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		for _, table := range []string{PreferencesTable, DatasetTable} {
			if err := clearSQLTable(backend, connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(backend schema.DatabaseBackend, connStr, tableName string) error {
	driverName := driverFor(backend)
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
