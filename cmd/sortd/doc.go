// Command sortd organizes the files in a directory into category subfolders
// by extension, records each move so the run can be undone, and reports
// per-category statistics.
package main
