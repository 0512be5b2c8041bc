// Package cmd defines the command-line interface for folio.
package cmd

import (
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(commitsCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the theme subcommands to the parent theme command
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeResetCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("lines", contract.DefaultLinesPath, "Path to the line-level commit CSV")
	rootCmd.PersistentFlags().String("projects", contract.DefaultProjectsPath, "Path to the project list JSON")
	rootCmd.PersistentFlags().String("commit-url", schema.DefaultCommitURLBase, "URL prefix of commit links")
	rootCmd.PersistentFlags().StringP("query", "q", "", "Search projects by any field (case-insensitive)")
	rootCmd.PersistentFlags().String("year", "", "Select a single project year")
	rootCmd.PersistentFlags().String("heading", string(schema.DefaultHeading), "Heading level of each project: h1 to h6")
	rootCmd.PersistentFlags().String("brush", "", "Brush rectangle on the 1000x600 scatter plot: x0,y0,x1,y1")
	rootCmd.PersistentFlags().Float64("progress", contract.UnsetProgress, "Time slider position from 0 to 100 (default: end of timeline)")
	rootCmd.PersistentFlags().Int("step", contract.UnsetStep, "Narrative step index, starting at 0 (cannot be combined with --progress)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address to listen on (host:port)")
	serveCmd.Flags().String("base-path", "", "Base path of every page (default: / on localhost, /portfolio/ elsewhere)")
	serveCmd.Flags().Bool("watch", false, "Reload the data when the CSV or JSON source changes")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("export-dir", "export", "Directory the Parquet files are written to")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
