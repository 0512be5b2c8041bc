package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/folio/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd serves the portfolio over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio pages, JSON API and charts",
	Long: `Start an HTTP server with the portfolio pages and a JSON API over the
loaded data. Every request builds its own selection from its query parameters
(q, year, brush, progress, step).

Routes:
  /, projects/, resume/, contact/, meta/  - pages
  api/projects, api/breakdown, api/commits, api/files, api/stats, api/steps
  api/commits/:id/tooltip, api/nav, api/theme (GET and PUT)
  charts/scatter, charts/pie?source=years|languages
  /metrics                                 - Prometheus metrics

Examples:
  # Serve locally
  folio serve

  # Serve under /portfolio/ and reload when the sources change
  folio serve --addr 0.0.0.0:8080 --base-path portfolio --watch`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, cfg, storeManager)
	},
}
