package cli

import (
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/puzzlebox/internal/obslog"
	"github.com/ehrlich-b/puzzlebox/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stepwise solver contract over HTTP for an external visualizer",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		server := web.NewServer()
		obslog.Log.Info().Str("addr", addr).Msg("starting server")
		return server.Start(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
}
