package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barafael/trackinator/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent recorded check runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled; enable it in the configuration ('trackinator config init' creates a sample)")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No check runs recorded")
				return nil
			}

			if !stdoutIsTerminal() {
				for _, run := range runs {
					fmt.Fprintf(out, "%s %s total=%d failed=%d %s\n",
						run.StartedAt.Format(time.RFC3339), run.ID, run.Total, run.Failed, run.Duration)
				}
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					run.ID,
					fmt.Sprintf("%d", run.Total),
					fmt.Sprintf("%d", run.Failed),
					run.Duration.Round(time.Millisecond).String(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Run", "Tracks", "Failed", "Duration"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	return cmd
}
