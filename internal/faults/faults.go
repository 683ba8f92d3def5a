// Package faults defines the error taxonomy shared across sortd. Every
// failure surfaced by a command carries one of the sentinel markers below so
// the CLI can classify it with errors.Is when choosing an exit code.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrDirectory     = errors.New("directory error")
	ErrTransient     = errors.New("transient failure")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later exit-code classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
