package cmd

import (
	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/internal/contract"
	"github.com/spf13/cobra"
)

// projectsCmd lists the filtered projects.
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects matching a search and year.",
	Long: `Filter the project list and show it with its year legend.

The search matches every field of a project, case-insensitively. Selecting a
year narrows the list to that year, while the legend keeps every year that
matches the search so the breakdown stays comparable.

Examples:
  # All projects
  folio projects

  # Projects mentioning maps, from 2024
  folio projects --query maps --year 2024

  # Export to JSON
  folio projects --output json --output-file projects.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProjects(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list projects", err)
		}
	},
}

// breakdownCmd shows the year breakdown of the search results.
var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Count the projects matching a search per year.",
	Long: `Group the projects matching a search by year, with counts and proportions.

Slices are in first-appearance order of the project list. The selected year,
if any, is marked.

Examples:
  # Breakdown of every project
  folio breakdown

  # Breakdown of a search, marking 2023
  folio breakdown --query dashboard --year 2023`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBreakdown(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot break down projects", err)
		}
	},
}
