package undo_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/faults"
	"sortd/internal/logging"
	"sortd/internal/movelog"
	"sortd/internal/organize"
	"sortd/internal/rules"
	"sortd/internal/testsupport"
	"sortd/internal/undo"
)

func organizeFixture(t *testing.T, root string) *organize.Result {
	t.Helper()
	result, err := organize.Run(context.Background(), root, rules.Default(), organize.Options{Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	return result
}

func TestUndoRestoresRoundTrip(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.jpg"), 100)
	testsupport.WriteFile(t, filepath.Join(root, "b.txt"), 200)
	testsupport.WriteFile(t, filepath.Join(root, "note"), 50)
	organizeFixture(t, root)

	result, err := undo.Run(context.Background(), root, logging.NewNop())
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if result.Restored != 3 || result.Skipped != 0 {
		t.Fatalf("restored=%d skipped=%d", result.Restored, result.Skipped)
	}

	for _, name := range []string{"a.jpg", "b.txt", "note"} {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil {
			t.Errorf("expected %s restored: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s restored empty", name)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "Images", "a.jpg")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("organized copy still present: %v", err)
	}
	if movelog.Exists(root) {
		t.Fatal("move log retained after full restore")
	}
}

func TestUndoSkipsOccupiedSource(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.jpg"), 100)
	testsupport.WriteFile(t, filepath.Join(root, "b.txt"), 100)
	organizeFixture(t, root)

	// A new file now occupies a.jpg's original path; undo must not clobber it.
	testsupport.WriteFile(t, filepath.Join(root, "a.jpg"), 7)

	result, err := undo.Run(context.Background(), root, logging.NewNop())
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if result.Restored != 1 || result.Skipped != 1 {
		t.Fatalf("restored=%d skipped=%d", result.Restored, result.Skipped)
	}

	info, err := os.Stat(filepath.Join(root, "a.jpg"))
	if err != nil || info.Size() != 7 {
		t.Fatalf("occupying file overwritten: %v %v", info, err)
	}
	if _, err := os.Stat(filepath.Join(root, "Images", "a.jpg")); err != nil {
		t.Fatalf("organized copy should remain: %v", err)
	}

	// The unresolved entry stays in the log for a later retry.
	if !movelog.Exists(root) {
		t.Fatal("move log deleted despite skip")
	}
	store, err := movelog.Open(root)
	if err != nil {
		t.Fatalf("open move log: %v", err)
	}
	defer store.Close()
	records, err := store.Records(context.Background())
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 1 || filepath.Base(records[0].Source) != "a.jpg" {
		t.Fatalf("expected only the skipped entry retained, got %v", records)
	}
}

func TestUndoRetryAfterConflictCleared(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.jpg"), 100)
	organizeFixture(t, root)
	testsupport.WriteFile(t, filepath.Join(root, "a.jpg"), 7)

	if result, err := undo.Run(context.Background(), root, logging.NewNop()); err != nil || result.Skipped != 1 {
		t.Fatalf("first undo: %v %+v", err, result)
	}

	if err := os.Remove(filepath.Join(root, "a.jpg")); err != nil {
		t.Fatal(err)
	}
	result, err := undo.Run(context.Background(), root, logging.NewNop())
	if err != nil {
		t.Fatalf("second undo: %v", err)
	}
	if result.Restored != 1 || result.Skipped != 0 {
		t.Fatalf("restored=%d skipped=%d", result.Restored, result.Skipped)
	}
	if movelog.Exists(root) {
		t.Fatal("move log retained after successful retry")
	}
}

func TestUndoNothingToUndo(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 2; i++ {
		result, err := undo.Run(context.Background(), root, logging.NewNop())
		if !errors.Is(err, faults.ErrNothingToUndo) {
			t.Fatalf("run %d: expected ErrNothingToUndo, got %v", i, err)
		}
		if result.Restored != 0 || result.Skipped != 0 {
			t.Fatalf("run %d: expected zero result, got %+v", i, result)
		}
	}
}

func TestUndoReverseOrderRestoresConflictChains(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.jpg"), 100)
	testsupport.WriteFile(t, filepath.Join(root, "Images", "a.jpg"), 10)
	organizeFixture(t, root) // root a.jpg lands as Images/a (1).jpg

	result, err := undo.Run(context.Background(), root, logging.NewNop())
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if result.Restored != 1 || result.Skipped != 0 {
		t.Fatalf("restored=%d skipped=%d", result.Restored, result.Skipped)
	}
	info, err := os.Stat(filepath.Join(root, "a.jpg"))
	if err != nil || info.Size() != 100 {
		t.Fatalf("restored a.jpg wrong: %v %v", info, err)
	}
	if _, err := os.Stat(filepath.Join(root, "Images", "a.jpg")); err != nil {
		t.Fatalf("pre-existing library copy disturbed: %v", err)
	}
}
