package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/huangsam/folio/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// storeManager is the global store manager instance.
var storeManager contract.StoreManager

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "folio",
	Short:              "Explore a portfolio and the commit history behind it.",
	Long:               `Folio filters a project list, breaks it down by year and replays the line-level commit history of the site that presents it.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".folio") // Name of config file (without extension)
		viper.SetConfigType("yaml")   // We'll use YAML format
		viper.AddConfigPath(".")      // Look in the current directory
		viper.AddConfigPath("$HOME")  // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("FOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("lines", contract.DefaultLinesPath)
	viper.SetDefault("projects", contract.DefaultProjectsPath)
	viper.SetDefault("commit-url", schema.DefaultCommitURLBase)
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("heading", schema.DefaultHeading)
	viper.SetDefault("progress", contract.UnsetProgress)
	viper.SetDefault("step", contract.UnsetStep)
	viper.SetDefault("addr", contract.DefaultAddr)
	viper.SetDefault("store-backend", schema.SQLiteBackend)
	viper.SetDefault("store-db-connect", "")
	viper.SetDefault("emoji", "no")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(ctx, cfg, input); err != nil {
		return err
	}

	// 4. Initialize the stores with validated config
	if err := iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize stores: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetStoreManager sets the global store manager.
func SetStoreManager(mgr contract.StoreManager) {
	storeManager = mgr
}
