package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/organize"
	"sortd/internal/stats"
)

var errPartialOrganize = errors.New("completed with skipped files")

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		dryRun  bool
		noStats bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Move files in a directory into category subfolders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := organize.Run(cmd.Context(), args[0], ctx.table(), organize.Options{
				DryRun: dryRun,
				Retry:  ctx.retryPolicy(),
				Logger: ctx.logger(),
			})
			if err != nil {
				return err
			}

			if asJSON {
				if err := writeJSON(cmd, organizeReport(result)); err != nil {
					return err
				}
			} else {
				renderOrganizeResult(cmd, result, !noStats)
			}

			if len(result.Failures) > 0 {
				return fmt.Errorf("%w: %d of %d files", errPartialOrganize, len(result.Failures), len(result.Planned))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned moves without touching the filesystem")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "Skip the statistics table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the run report as JSON")
	return cmd
}

func renderOrganizeResult(cmd *cobra.Command, result *organize.Result, withStats bool) {
	out := cmd.OutOrStdout()

	if result.DryRun {
		for _, move := range result.Planned {
			fmt.Fprintf(out, "[dry run] %s -> %s/\n", move.Source, move.Category())
		}
		fmt.Fprintf(out, "Dry run complete: %d files would be moved\n", len(result.Planned))
	} else {
		fmt.Fprintf(out, "Moved %d of %d files\n", len(result.Records), len(result.Planned))
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(out, "failed: %s (%s)\n", failure.Source, failure.Reason)
	}

	if withStats && result.Summary.TotalCount() > 0 {
		fmt.Fprintln(out, renderStatsTable(result.Summary))
		fmt.Fprintf(out, "Total: %d files (%s)\n", result.Summary.TotalCount(), stats.FormatBytes(result.Summary.TotalBytes()))
	}
}

func renderStatsTable(summary stats.Summary) string {
	rows := make([][]string, 0)
	for _, category := range summary.Categories() {
		total := summary.Category(category)
		rows = append(rows, []string{
			category,
			fmt.Sprintf("%d", total.Count),
			stats.FormatBytes(total.Bytes),
		})
	}
	return renderTable(
		[]string{"Category", "Files", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}
