// Package movelog persists the record of moves performed by the most recent
// organize run, one SQLite database per target directory. The log is the only
// durable state sortd keeps and exists solely so a run can be undone.
package movelog
