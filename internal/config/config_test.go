package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/config"
	"sortd/internal/faults"
	"sortd/internal/rules"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("exists should be false")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg.Logging)
	}
	if cfg.Organize.RetryAttempts != 3 {
		t.Fatalf("retry attempts = %d", cfg.Organize.RetryAttempts)
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got := table.Classify("a.jpg"); got != "Images" {
		t.Fatalf("default table Classify(a.jpg) = %q", got)
	}
}

func TestLoadParsesCategories(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"

[[category]]
name = "pix"
extensions = ["JPG", ".png"]

[[category]]
name = "Text"
extensions = [".txt"]
`)
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	// Names are title-cased and extensions normalized to lower-case with a
	// leading dot.
	if got := table.Classify("photo.jpg"); got != "Pix" {
		t.Fatalf("Classify(photo.jpg) = %q", got)
	}
	if got := table.Classify("readme.txt"); got != "Text" {
		t.Fatalf("Classify(readme.txt) = %q", got)
	}
	if got := table.Classify("other.bin"); got != rules.FallbackCategory {
		t.Fatalf("Classify(other.bin) = %q", got)
	}
}

func TestLoadRejectsBadLoggingFormat(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "xml"
`)
	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected format validation error")
	}
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `[[category`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTableRejectsDuplicateExtensionAcrossCategories(t *testing.T) {
	path := writeConfig(t, `
[[category]]
name = "A"
extensions = [".x"]

[[category]]
name = "B"
extensions = [".x"]
`)
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Table(); err == nil {
		t.Fatal("expected duplicate extension error")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		t.Fatalf("sample not written: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
}
