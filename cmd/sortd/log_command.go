package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"sortd/internal/faults"
	"sortd/internal/movelog"
	"sortd/internal/stats"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "log <directory>",
		Short: "Show the move log entries that undo would replay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(args[0])
			if err != nil {
				return faults.Wrap(faults.ErrDirectory, "log", "resolve path", args[0], err)
			}
			if !movelog.Exists(root) {
				return faults.Wrap(faults.ErrNothingToUndo, "log", "open move log", root, nil)
			}

			store, err := movelog.Open(root)
			if err != nil {
				return faults.Wrap(faults.ErrTransient, "log", "open move log", root, err)
			}
			defer func() {
				_ = store.Close()
			}()

			records, err := store.Records(cmd.Context())
			if err != nil {
				return faults.Wrap(faults.ErrTransient, "log", "read move log", root, err)
			}
			if len(records) == 0 {
				return faults.Wrap(faults.ErrNothingToUndo, "log", "read move log", root, nil)
			}

			if asJSON {
				return writeJSON(cmd, records)
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					fmt.Sprintf("%d", record.ID),
					filepath.Base(record.Source),
					relativeTo(root, record.Dest),
					stats.FormatBytes(record.Size),
					record.MovedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "File", "Moved To", "Size", "When"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the move log as JSON")
	return cmd
}

func relativeTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
