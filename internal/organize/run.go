package organize

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"sortd/internal/faults"
	"sortd/internal/logging"
	"sortd/internal/movelog"
	"sortd/internal/plan"
	"sortd/internal/rules"
	"sortd/internal/stats"
)

// Options parameterizes one organize run.
type Options struct {
	DryRun bool
	Retry  RetryPolicy
	Logger *slog.Logger
}

// Result reports one organize run.
type Result struct {
	RunID    string
	DryRun   bool
	Planned  []plan.Move
	Records  []movelog.Record
	Failures []Failure
	Summary  stats.Summary
}

// Run plans and executes one organize pass over root. A live run replaces
// the directory's move log with this run's records; dry-run leaves both the
// filesystem and the log untouched. Per-file failures are collected in the
// result, not returned as an error.
func Run(ctx context.Context, root string, table rules.Table, opts Options) (*Result, error) {
	logger := logging.NewComponentLogger(opts.Logger, "organize")

	moves, err := plan.Plan(root, table)
	if err != nil {
		return nil, err
	}
	executor := NewExecutor(opts.Retry, opts.Logger)

	result := &Result{DryRun: opts.DryRun, Planned: moves}
	if opts.DryRun {
		_, _ = executor.Execute(ctx, moves, "", nil, true)
		result.Summary = stats.AggregateMoves(moves)
		return result, nil
	}
	if len(moves) == 0 {
		logger.Info("nothing to organize", logging.String("directory", root))
		result.Summary = stats.Aggregate(nil)
		return result, nil
	}

	log, err := movelog.Open(root)
	if err != nil {
		return nil, faults.Wrap(faults.ErrTransient, "organize", "open move log", root, err)
	}
	defer func() {
		_ = log.Close()
	}()

	// Starting a run invalidates the previous one; only the latest run is
	// undoable.
	if err := log.Begin(ctx); err != nil {
		return nil, faults.Wrap(faults.ErrTransient, "organize", "reset move log", root, err)
	}

	result.RunID = uuid.NewString()
	result.Records, result.Failures = executor.Execute(ctx, moves, result.RunID, log, false)
	result.Summary = stats.Aggregate(result.Records)

	logger.Info("organize run finished",
		logging.String("run_id", result.RunID),
		logging.Int("moved", len(result.Records)),
		logging.Int("failed", len(result.Failures)),
	)
	return result, nil
}
