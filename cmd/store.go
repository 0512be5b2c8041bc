package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeBackendConfig reads and validates the store backend settings.
func storeBackendConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("store-backend")))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	return nil
}

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := storeBackendConfig(); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize stores: %w", err)
	}
	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd focused on store management.
//
// Note: Store subcommands use minimal initialization instead of the full
// sharedSetup. This avoids loading the data sources for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the preference and dataset stores",
	Long: `Manage the stores that keep the color scheme preference and the parsed
line-level dataset between runs.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (nothing is kept)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored data
  migrate - Run database schema migrations

Examples:
  # Check store status
  folio store status

  # Clear stores after the CSV format changed
  folio store clear`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show backend, connection status, entry count, entry time range and table
size of the preference store and the dataset store.`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		for _, store := range []contract.CacheStore{iocache.Manager.GetPreferenceStore(), iocache.Manager.GetDatasetStore()} {
			if store == nil {
				continue
			}
			status, err := store.GetStatus()
			if err != nil {
				contract.LogFatal("Failed to get store status", err)
			}
			iocache.PrintStoreStatus(os.Stdout, status)
		}
	},
}

// storeClearCmd clears the stores.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored preferences and cached datasets",
	Long: `Delete all stored data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the store tables

Examples:
  # Clear SQLite stores (default)
  folio store clear

  # Clear MySQL stores (set connection string via env variable)
  FOLIO_STORE_BACKEND=mysql FOLIO_STORE_DB_CONNECT="..." folio store clear`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeBackendConfig()
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearStores(cfg.StoreBackend, iocache.GetDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear stores", err)
		}
		fmt.Println("Stores cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the stores.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions of the store tables.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  folio store migrate

  # Migrate to specific version
  folio store migrate --target-version 1

  # Rollback to initial state
  folio store migrate --target-version 0`,
	// Migrations must run on a fresh database, so the stores are not opened here.
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeBackendConfig()
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateStores(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
