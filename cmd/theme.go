package cmd

import (
	"fmt"

	"github.com/huangsam/folio/core"
	"github.com/huangsam/folio/core/site"
	"github.com/huangsam/folio/internal/contract"
	"github.com/huangsam/folio/internal/iocache"
	"github.com/spf13/cobra"
)

// themeCmd manages the stored color scheme.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the color scheme preference",
	Long: `Read or change the color scheme used by the served pages and charts.

The preference lives in the preference store, so it survives restarts.

Subcommands:
  get   - Print the stored color scheme
  set   - Store a color scheme
  reset - Go back to the automatic scheme`,
}

// themeGetCmd prints the stored color scheme.
var themeGetCmd = &cobra.Command{
	Use:     "get",
	Short:   "Print the stored color scheme",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteThemeGet(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot read color scheme", err)
		}
	},
}

// themeSetCmd stores a color scheme.
var themeSetCmd = &cobra.Command{
	Use:   "set <scheme>",
	Short: "Store a color scheme",
	Long: `Store one of the color schemes of the theme selector.

Examples:
  folio theme set dark
  folio theme set light
  folio theme set "light dark"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		scheme, err := site.ParseColorScheme(args[0])
		if err != nil {
			return err
		}
		return core.ExecuteThemeSet(rootCtx, cfg, storeManager, scheme)
	},
}

// themeResetCmd removes the stored color scheme.
var themeResetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Go back to the automatic color scheme",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ResetColorScheme(storeManager); err != nil {
			contract.LogFatal("Cannot reset color scheme", err)
		}
		fmt.Println("Color scheme reset.")
	},
}
