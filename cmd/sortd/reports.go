package main

import (
	"sortd/internal/organize"
	"sortd/internal/undo"
)

type categoryReport struct {
	Category string `json:"category"`
	Files    int    `json:"files"`
	Bytes    int64  `json:"bytes"`
}

type failureReport struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
	Reason string `json:"reason"`
}

type runReport struct {
	RunID      string           `json:"run_id,omitempty"`
	DryRun     bool             `json:"dry_run"`
	Planned    int              `json:"planned"`
	Moved      int              `json:"moved"`
	Failed     int              `json:"failed"`
	Categories []categoryReport `json:"categories"`
	Failures   []failureReport  `json:"failures,omitempty"`
}

func organizeReport(result *organize.Result) runReport {
	report := runReport{
		RunID:   result.RunID,
		DryRun:  result.DryRun,
		Planned: len(result.Planned),
		Moved:   len(result.Records),
		Failed:  len(result.Failures),
	}
	for _, category := range result.Summary.Categories() {
		total := result.Summary.Category(category)
		report.Categories = append(report.Categories, categoryReport{
			Category: category,
			Files:    total.Count,
			Bytes:    total.Bytes,
		})
	}
	for _, failure := range result.Failures {
		report.Failures = append(report.Failures, failureReport{
			Source: failure.Source,
			Dest:   failure.Dest,
			Reason: failure.Reason,
		})
	}
	return report
}

type undoReport struct {
	Restored int `json:"restored"`
	Skipped  int `json:"skipped"`
}

func newUndoReport(result undo.Result) undoReport {
	return undoReport{Restored: result.Restored, Skipped: result.Skipped}
}
