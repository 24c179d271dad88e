package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a directory of question files over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		origins, _ := cmd.Flags().GetStringSlice("origin")
		dir := flagOr(cmd, "dir", config.FromEnv().Source)

		slog.SetDefault(logging.New(os.Stderr, slog.LevelInfo))

		return server.Serve(cmd.Context(), server.Options{
			Addr:           addr,
			Dir:            dir,
			AllowedOrigins: origins,
		})
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("dir", "", "Directory holding <file>.json question files (defaults to QUIZDECK_SOURCE)")
	serveCmd.Flags().StringSlice("origin", nil, "Allowed CORS origins (default any)")
}
