package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sortd/internal/faults"
	"sortd/internal/movelog"
	"sortd/internal/rules"
)

// Move is one proposed relocation. Produced by Plan, consumed by the
// executor, never persisted.
type Move struct {
	// Source is the absolute path of the file before the move.
	Source string
	// DestDir is the absolute category subfolder of the target directory.
	DestDir string
	// Dest is the final absolute destination path, conflicts resolved.
	Dest string
	// Size is the file size in bytes at planning time.
	Size int64
}

// Category returns the category name the move files under.
func (m Move) Category() string {
	return filepath.Base(m.DestDir)
}

// Plan lists the regular files directly inside root and produces one Move
// per file that needs relocating. Subdirectories, sortd's own artifacts, and
// already-organized files are skipped. The returned order follows the
// directory listing and is the order the executor must apply.
func Plan(root string, table rules.Table) ([]Move, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, faults.Wrap(faults.ErrDirectory, "plan", "resolve path", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, faults.Wrap(faults.ErrDirectory, "plan", "stat target", fmt.Sprintf("directory %s does not exist", absRoot), nil)
		}
		return nil, faults.Wrap(faults.ErrDirectory, "plan", "stat target", absRoot, err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrDirectory, "plan", "stat target", fmt.Sprintf("%s is not a directory", absRoot), nil)
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, faults.Wrap(faults.ErrDirectory, "plan", "read target", absRoot, err)
	}

	// Destinations claimed earlier in this pass. The filesystem alone is not
	// enough: two sources can race for the same destination name.
	claimed := make(map[string]struct{})
	var moves []Move
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if isOwnArtifact(name) {
			continue
		}

		source := filepath.Join(absRoot, name)
		destDir := filepath.Join(absRoot, table.Classify(name))

		entryInfo, err := entry.Info()
		if err != nil {
			// Deleted between ReadDir and here; nothing to move.
			continue
		}

		dest := resolveConflict(destDir, name, claimed)
		claimed[dest] = struct{}{}
		moves = append(moves, Move{
			Source:  source,
			DestDir: destDir,
			Dest:    dest,
			Size:    entryInfo.Size(),
		})
	}
	return moves, nil
}

// resolveConflict returns destDir/name, or the first "name (N).ext" variant
// that collides with neither the filesystem nor a destination claimed earlier
// in this planning pass.
func resolveConflict(destDir, name string, claimed map[string]struct{}) string {
	stem, ext := name, ""
	// Split on the last dot, preserving case; dotfiles keep their whole name
	// as the stem, matching the classifier's notion of "no extension".
	if idx := strings.LastIndexByte(name, '.'); idx > 0 {
		stem, ext = name[:idx], name[idx:]
	}
	for n := 0; ; n++ {
		candidate := filepath.Join(destDir, name)
		if n > 0 {
			candidate = filepath.Join(destDir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		}
		if _, taken := claimed[candidate]; taken {
			continue
		}
		_, err := os.Lstat(candidate)
		if err == nil {
			continue
		}
		// ErrNotExist means the name is free. Any other error means the
		// category path cannot be probed at all, such as when a plain file
		// sits where the category folder should go; further suffixes would
		// fare no better, so keep the candidate and let the executor report
		// the underlying failure for this file.
		return candidate
	}
}

func isOwnArtifact(name string) bool {
	return name == movelog.DirName
}
