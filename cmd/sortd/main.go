package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sortd/internal/faults"
)

// Exit codes surfaced to scripts. Zero is full success.
const (
	exitFailure       = 1
	exitPartial       = 2 // organize finished but some files were not moved
	exitDirNotFound   = 3
	exitNothingToUndo = 4
	exitUndoPartial   = 5
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, faults.ErrDirectory):
		return exitDirNotFound
	case errors.Is(err, faults.ErrNothingToUndo):
		return exitNothingToUndo
	case errors.Is(err, errUndoPartial):
		return exitUndoPartial
	case errors.Is(err, errPartialOrganize):
		return exitPartial
	default:
		return exitFailure
	}
}
