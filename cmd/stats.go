package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress per module and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("sessions")

		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		if !rt.tracker.Load(ctx) {
			fmt.Fprintln(out, "No stored user.")
			return nil
		}
		for _, e := range rt.repo.LoadAll(ctx) {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e.UserMessage())
		}

		fmt.Fprintf(out, "User: %s\n\n", rt.tracker.Username())

		rows := make([]moduleRow, 0, len(rt.cfg.Modules))
		percents := make([]int, 0, len(rt.cfg.Modules))
		for _, m := range rt.cfg.Modules {
			count := rt.repo.Count(m.ID)
			p := quiz.ModuleProgress(m.ID, count, rt.tracker.Module(m.ID))
			rows = append(rows, moduleRow{Name: m.Name, Questions: count, Progress: p})
			percents = append(percents, p)
		}
		writeModules(out, rows, quiz.OverallProgress(percents))

		sessions, err := rt.store.EventRepo().RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("recent sessions: %w", err)
		}
		fmt.Fprintln(out)
		writeSessions(out, sessions, rt.cfg.ModuleName)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to list")
}

type moduleRow struct {
	Name      string
	Questions int
	Progress  int
}

func writeModules(w io.Writer, rows []moduleRow, overall int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULE\tQUESTIONS\tPROGRESS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d%%\n", r.Name, r.Questions, r.Progress)
	}
	fmt.Fprintf(tw, "Overall\t\t%d%%\n", overall)
	tw.Flush()
}

func writeSessions(w io.Writer, sessions []store.SessionEvent, moduleName func(string) string) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tMODULE\tRESULT\tSCORE\tTIME")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\n",
			s.Timestamp.Local().Format(time.DateTime),
			moduleName(s.ModuleID),
			s.Action,
			quiz.ScorePercentage(s.CorrectAnswers, s.IncorrectAnswers),
			quiz.FormatElapsed(s.DurationSecs),
		)
	}
	tw.Flush()
}
