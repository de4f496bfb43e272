package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/symptriage/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the classifier over HTTP",
	Long: `Serve starts an HTTP API exposing the classifier:

  GET  /healthz
  POST /api/v1/assess          {"symptoms": "..."}
  POST /api/v1/assess/labels   {"labels": ["..."], "confidence": 0.9}
  POST /api/v1/assess/image    [{"label": "...", "confidence": 0.9}, ...]
  GET  /api/v1/taxonomy
  GET  /metrics

Requests are rate limited per client. The server stops gracefully on
SIGINT or SIGTERM.

Example:
  symptriage serve --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		appCfg.Server.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(newPipeline(), appCfg, logger)
	return srv.Run(ctx)
}
