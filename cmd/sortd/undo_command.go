package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/undo"
)

var errUndoPartial = errors.New("undo left entries unresolved")

func newUndoCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "undo <directory>",
		Short: "Restore the files moved by the most recent organize run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := undo.Run(cmd.Context(), args[0], ctx.logger())
			if err != nil {
				return err
			}

			if asJSON {
				if err := writeJSON(cmd, newUndoReport(result)); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %d files", result.Restored)
				if result.Skipped > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), ", skipped %d (original paths occupied or files missing)", result.Skipped)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}

			if result.Skipped > 0 {
				return fmt.Errorf("%w: %d entries retained in the move log", errUndoPartial, result.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the undo report as JSON")
	return cmd
}
