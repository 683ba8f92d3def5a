// Package undo replays the move log in reverse, restoring files organized by
// the most recent run to their original locations.
package undo

import (
	"context"
	"log/slog"
	"path/filepath"

	"sortd/internal/faults"
	"sortd/internal/fileutil"
	"sortd/internal/logging"
	"sortd/internal/movelog"
)

// Result reports one undo pass.
type Result struct {
	Restored int
	Skipped  int
}

// Run restores the moves recorded for root. Records replay newest-first:
// a later move may have claimed a name or directory an earlier restoration
// needs free. A record whose original source path is occupied is skipped and
// retained for a future attempt; occupied paths are never overwritten. The
// log is deleted only after every record restored.
//
// An absent or empty log returns faults.ErrNothingToUndo with a zero Result;
// running undo twice in a row is therefore a reported no-op, not a failure.
func Run(ctx context.Context, root string, logger *slog.Logger) (Result, error) {
	logger = logging.NewComponentLogger(logger, "undo")

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrDirectory, "undo", "resolve path", root, err)
	}
	if !movelog.Exists(absRoot) {
		return Result{}, faults.Wrap(faults.ErrNothingToUndo, "undo", "open move log", absRoot, nil)
	}

	log, err := movelog.Open(absRoot)
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrTransient, "undo", "open move log", absRoot, err)
	}
	defer func() {
		_ = log.Close()
	}()

	records, err := log.Records(ctx)
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrTransient, "undo", "read move log", absRoot, err)
	}
	if len(records) == 0 {
		return Result{}, faults.Wrap(faults.ErrNothingToUndo, "undo", "read move log", absRoot, nil)
	}

	var result Result
	for i := len(records) - 1; i >= 0; i-- {
		record := records[i]
		if err := ctx.Err(); err != nil {
			break
		}
		if fileutil.PathExists(record.Source) {
			logger.Warn("skipping restore, original path occupied",
				logging.String("source", record.Source),
				logging.String("dest", record.Dest),
			)
			result.Skipped++
			continue
		}
		if !fileutil.PathExists(record.Dest) {
			// The organized file vanished since the run; nothing to restore,
			// keep the record so the situation stays visible.
			logger.Warn("skipping restore, organized file missing",
				logging.String("dest", record.Dest),
			)
			result.Skipped++
			continue
		}
		if err := fileutil.MoveFile(record.Dest, record.Source); err != nil {
			logger.Warn("restore failed",
				logging.String("dest", record.Dest),
				logging.String("source", record.Source),
				logging.Error(err),
			)
			result.Skipped++
			continue
		}
		// Drop the row as soon as the file is back so an interrupted undo
		// resumes with only the remaining records.
		if err := log.Remove(ctx, record.ID); err != nil {
			logger.Warn("restored but not removed from log",
				logging.String("source", record.Source),
				logging.Error(err),
			)
		}
		result.Restored++
		logger.Info("restored file",
			logging.String("source", record.Source),
		)
	}

	if result.Skipped == 0 && result.Restored == len(records) {
		if err := log.Close(); err != nil {
			return result, faults.Wrap(faults.ErrTransient, "undo", "close move log", absRoot, err)
		}
		if err := movelog.Delete(absRoot); err != nil {
			return result, faults.Wrap(faults.ErrTransient, "undo", "delete move log", absRoot, err)
		}
		logger.Info("undo complete, move log deleted",
			logging.Int("restored", result.Restored),
		)
	}
	return result, nil
}
