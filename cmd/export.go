package cmd

import (
	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes the loaded data as Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export projects, commits and lines as Parquet files",
	Long: `Write the loaded data to three Parquet files for analysis in other tools:

  projects.parquet - the project list
  commits.parquet  - one row per commit with its hour of day and line count
  lines.parquet    - the line-level source

Examples:
  folio export --export-dir ./out`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, storeManager, viper.GetString("export-dir")); err != nil {
			contract.LogFatal("Failed to export data", err)
		}
	},
}
