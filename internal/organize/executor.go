package organize

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"sortd/internal/fileutil"
	"sortd/internal/logging"
	"sortd/internal/movelog"
	"sortd/internal/plan"
)

// RetryPolicy bounds how often a single failing move is reattempted. Backoff
// is linear: attempt N waits N*Delay. The defaults (3 attempts, 150 ms) are
// documented constants, not load-bearing behavior.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry is used when the caller supplies no policy.
var DefaultRetry = RetryPolicy{Attempts: 3, Delay: 150 * time.Millisecond}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = DefaultRetry.Attempts
	}
	if p.Delay <= 0 {
		p.Delay = DefaultRetry.Delay
	}
	return p
}

// Failure describes one planned move that could not be applied after
// exhausting retries. Failures never abort the batch.
type Failure struct {
	Source string
	Dest   string
	Reason string
}

// Executor applies planned moves in order. Construct with NewExecutor.
type Executor struct {
	retry  RetryPolicy
	logger *slog.Logger
}

// NewExecutor builds an executor with the given retry policy. A nil logger
// disables logging.
func NewExecutor(retry RetryPolicy, logger *slog.Logger) *Executor {
	return &Executor{
		retry:  retry.normalized(),
		logger: logging.NewComponentLogger(logger, "executor"),
	}
}

// Execute applies moves in planner order. Every success is appended to log
// before the next move starts, so an interrupt between moves leaves the log
// consistent with the filesystem. In dry-run mode nothing is mutated and no
// records are produced; the moves themselves are the report.
func (e *Executor) Execute(ctx context.Context, moves []plan.Move, runID string, log *movelog.Store, dryRun bool) ([]movelog.Record, []Failure) {
	var (
		records  []movelog.Record
		failures []Failure
	)
	for _, move := range moves {
		if err := ctx.Err(); err != nil {
			// The unit of work is one move; stopping between moves leaves a
			// consistent, undoable partial state.
			break
		}
		if dryRun {
			e.logger.Info("would move file",
				logging.String("source", move.Source),
				logging.String("dest", move.Dest),
			)
			continue
		}

		if err := e.moveWithRetry(ctx, move); err != nil {
			e.logger.Warn("move failed",
				logging.String("source", move.Source),
				logging.String("dest", move.Dest),
				logging.Error(err),
			)
			failures = append(failures, Failure{Source: move.Source, Dest: move.Dest, Reason: err.Error()})
			continue
		}

		record := movelog.Record{
			RunID:   runID,
			Source:  move.Source,
			Dest:    move.Dest,
			Size:    move.Size,
			MovedAt: time.Now().UTC(),
		}
		id, err := log.Append(ctx, record)
		if err != nil {
			// The file moved but is no longer undoable; surface loudly and
			// keep going.
			e.logger.Error("move not recorded in log",
				logging.String("dest", move.Dest),
				logging.Error(err),
			)
		} else {
			record.ID = id
		}
		records = append(records, record)
		e.logger.Info("moved file",
			logging.String("source", move.Source),
			logging.String("dest", move.Dest),
			logging.Int64("size_bytes", move.Size),
		)
	}
	return records, failures
}

func (e *Executor) moveWithRetry(ctx context.Context, move plan.Move) error {
	if err := fileutil.EnsureDir(move.DestDir); err != nil {
		return err
	}
	var lastErr error
	for attempt := 1; attempt <= e.retry.Attempts; attempt++ {
		lastErr = fileutil.MoveFile(move.Source, move.Dest)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) || attempt == e.retry.Attempts {
			return lastErr
		}
		e.logger.Warn("move attempt failed, retrying",
			logging.String("source", move.Source),
			logging.Int("attempt", attempt),
			logging.Error(lastErr),
		)
		select {
		case <-time.After(time.Duration(attempt) * e.retry.Delay):
		case <-ctx.Done():
			return lastErr
		}
	}
	return lastErr
}

// isRetryable treats permission and transient I/O errors as retryable. A
// missing source will not come back, so retrying is pointless.
func isRetryable(err error) bool {
	return !errors.Is(err, os.ErrNotExist)
}
