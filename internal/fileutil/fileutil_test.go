package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/fileutil"
	"sortd/internal/testsupport"
)

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	testsupport.WriteFile(t, src, 1024)

	if err := fileutil.MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("source still present: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat dst: %v", err)
	}
	if info.Size() != 1024 {
		t.Fatalf("dst size = %d", info.Size())
	}
}

func TestCopyFilePreservesContent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	if err := os.WriteFile(src, []byte("payload"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("dst content = %q", data)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("dst mode = %v", info.Mode())
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x")
	if fileutil.PathExists(path) {
		t.Fatal("PathExists true for missing file")
	}
	testsupport.WriteFile(t, path, 1)
	if !fileutil.PathExists(path) {
		t.Fatal("PathExists false for present file")
	}
}
