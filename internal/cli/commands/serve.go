package commands

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/stacklens/core/internal/api"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the merge HTTP API",
		Long: `Start an HTTP server exposing the merge as an endpoint: POST the two export
artifacts to /merge and receive the unified report. GET /health reports
service status.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			slog.Info("server starting", "addr", cfg.ListenAddr)
			return http.ListenAndServe(cfg.ListenAddr, api.NewRouter(cfg))
		},
	}
}
