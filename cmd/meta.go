package cmd

import (
	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/internal/contract"
	"github.com/spf13/cobra"
)

// commitsCmd lists the commits visible at a point of the timeline.
var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "List the commits up to a point of the timeline.",
	Long: `Show the commits made up to the slider position or narrative step, and
mark the ones inside the brush rectangle.

Examples:
  # Every commit
  folio commits

  # Halfway through the timeline
  folio commits --progress 50

  # As of the third narrative step, brushing the evening hours
  folio commits --step 2 --brush 0,0,1000,200`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCommits(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list commits", err)
		}
	},
}

// filesCmd shows the per-file line counts of the visible commits.
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Show line counts per file up to a point of the timeline.",
	Long: `Break the lines of the visible commits down by file, largest first,
with the line types inside each file.

Examples:
  # Files as of the first commit
  folio files --step 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFiles(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list files", err)
		}
	},
}

// statsCmd summarizes the visible commits.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the commits up to a point of the timeline.",
	Long: `Show the summary tiles of the meta page: total lines, commits, files,
the longest file, the average file length, the deepest nesting and the most
active time of day.

Examples:
  folio stats
  folio stats --progress 25 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot summarize commits", err)
		}
	},
}

// stepsCmd prints the narrative steps.
var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Print the narrative of every commit.",
	Long: `Print one narrative block per commit in datetime order. The index of a
block is the value --step takes in the other commands.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSteps(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot print steps", err)
		}
	},
}
