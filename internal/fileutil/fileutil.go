// Package fileutil provides the small filesystem helpers shared by the
// executor and undo engine.
package fileutil

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// MoveFile renames src to dst, falling back to copy+remove when the rename
// crosses a filesystem boundary (EXDEV). The destination directory must
// already exist.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := CopyFile(src, dst); copyErr != nil {
			return copyErr
		}
		return os.Remove(src)
	}
	return err
}

// CopyFile streams src to dst, preserving the source file mode.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// EnsureDir creates dir and any missing parents, idempotently.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// PathExists reports whether path exists (without following symlinks).
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
