package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Multiple-choice quiz trainer",
	Long: "quizdeck runs module-based multiple-choice quizzes in the terminal and\n" +
		"keeps per-question progress between sessions.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. Errors are returned for the caller to print.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to quiz config JSON (overrides QUIZDECK_CONFIG)")
	flags.String("db", "", "Database file, or DSN for postgres (overrides QUIZDECK_DB)")
	flags.String("db-driver", "", "Database driver: sqlite or postgres (overrides QUIZDECK_DB_DRIVER)")
	flags.String("source", "", "Directory or http(s) base URL holding question files (overrides QUIZDECK_SOURCE; default \"data\")")
	flags.String("log", "", "Log file (overrides QUIZDECK_LOG; defaults to quizdeck.log beside the database)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	rt, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctrl := app.NewController(app.Deps{
		Config:    rt.cfg,
		Tracker:   rt.tracker,
		Questions: rt.repo,
		Events:    rt.store.EventRepo(),
	})

	var notices []string
	for _, e := range ctrl.Start(ctx) {
		notices = append(notices, e.UserMessage())
	}

	return programExit(app.Run(ctx, ctrl, notices))
}

// programExit maps the TUI's exit error. Interrupts and signal shutdowns
// are normal exits; the record was already saved by app.Run.
func programExit(err error) error {
	if err == nil || errors.Is(err, tea.ErrInterrupted) || errors.Is(err, context.Canceled) {
		return nil
	}
	slog.Error("program exited", "error", err)
	return err
}
