// Package organize applies planned moves to the filesystem. It owns the run
// lifecycle: planning, per-file execution with bounded retry, move log
// appends, and the final run summary. Dry-run flows through the same path
// without mutating anything.
package organize
