package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barafael/trackinator/internal/config"
	"github.com/barafael/trackinator/internal/history"
	"github.com/barafael/trackinator/internal/manifest"
	"github.com/barafael/trackinator/internal/reachability"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every track URL is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			m, err := manifest.Load(manifestPath)
			if err != nil {
				return err
			}

			targets := reachability.Targets(m)
			checker := reachability.New(cfg, logger)

			started := time.Now()
			report, err := checker.Run(cmd.Context(), targets)
			if err != nil {
				return err
			}
			duration := time.Since(started)

			printCheckReport(cmd, report)

			if cfg.History.Enabled {
				if err := recordCheckRun(cmd.Context(), cfg, started, duration, report); err != nil {
					logger.Warn("record check run", "error", err)
				}
			}

			if failed := report.Failed(); len(failed) > 0 {
				return fmt.Errorf("%d of %d tracks unreachable", len(failed), len(report.Results))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All %d tracks reachable\n", len(report.Results))
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", defaultManifestPath, "The manifest to check")
	return cmd
}

func printCheckReport(cmd *cobra.Command, report *reachability.Report) {
	for _, result := range report.Failed() {
		fmt.Fprintf(cmd.ErrOrStderr(), "not reachable %s (%s)\n", result.Target.URL, result.Outcome.Reason)
	}
	if len(report.Results) == 0 {
		return
	}

	out := cmd.OutOrStdout()
	if !stdoutIsTerminal() {
		for _, result := range report.Results {
			fmt.Fprintf(out, "%-4s %s %s\n", resultWord(result), result.Target.Name, result.Target.URL)
		}
		return
	}

	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		detail := result.Outcome.Reason
		if result.Outcome.OK {
			detail = fmt.Sprintf("status %d", result.Outcome.Status)
		}
		rows = append(rows, []string{
			result.Target.Name,
			result.Target.URL,
			resultWord(result),
			detail,
			formatLatency(result.Outcome.Latency),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Track", "URL", "Result", "Detail", "Latency"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
}

func resultWord(result reachability.Result) string {
	if result.Outcome.OK {
		return "ok"
	}
	return "FAIL"
}

func formatLatency(latency time.Duration) string {
	if latency <= 0 {
		return "-"
	}
	return latency.Round(time.Millisecond).String()
}

func recordCheckRun(ctx context.Context, cfg *config.Config, started time.Time, duration time.Duration, report *reachability.Report) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.RecordRun(ctx, started, duration, report)
	return err
}
