// Package logging centralizes slog construction and the structured attribute
// helpers used across sortd components.
package logging
