// Package plan turns a directory snapshot and a rule table into an ordered
// sequence of planned moves. Planning is read-only and deterministic, which
// is what makes dry-run output identical in content to a live run.
package plan
