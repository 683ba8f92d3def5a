package faults_test

import (
	"errors"
	"strings"
	"testing"

	"sortd/internal/faults"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := faults.Wrap(faults.ErrTransient, "organize", "open move log", "/tmp/target", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, faults.ErrTransient) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organize", "open move log", "/tmp/target"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutBaseError(t *testing.T) {
	err := faults.Wrap(faults.ErrNothingToUndo, "undo", "read move log", "/tmp/target", nil)
	if !errors.Is(err, faults.ErrNothingToUndo) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if strings.Contains(err.Error(), "%!") {
		t.Fatalf("malformed error string %q", err.Error())
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := faults.Wrap(nil, "", "", "", errors.New("io"))
	if !errors.Is(err, faults.ErrTransient) {
		t.Fatalf("expected transient default, got %v", err)
	}
}
