package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"sortd/internal/faults"
	"sortd/internal/rules"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Organize contains tuning for the move executor.
type Organize struct {
	RetryAttempts int `toml:"retry_attempts"`
	RetryDelayMS  int `toml:"retry_delay_ms"`
}

// Category declares one rule-table entry. Order in the file is preserved.
type Category struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
}

// Config encapsulates all configuration values for sortd.
type Config struct {
	Logging    Logging    `toml:"logging"`
	Organize   Organize   `toml:"organize"`
	Categories []Category `toml:"category"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sortd/config.toml")
}

// Load locates, parses, and validates a configuration file. When the file
// does not exist the returned config carries defaults and exists is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, faults.Wrap(faults.ErrConfiguration, "config", "normalize", resolvedPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, faults.Wrap(faults.ErrConfiguration, "config", "validate", resolvedPath, err)
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty path")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// Table builds the validated rule table from the configured categories. A
// config without categories yields the built-in default table.
func (c *Config) Table() (rules.Table, error) {
	if len(c.Categories) == 0 {
		return rules.Default(), nil
	}
	names := make([]string, 0, len(c.Categories))
	byName := make(map[string][]string, len(c.Categories))
	for _, category := range c.Categories {
		names = append(names, category.Name)
		byName[category.Name] = category.Extensions
	}
	return rules.NewTable(names, byName)
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}

// Sample returns the embedded sample configuration text.
func Sample() string {
	return sampleConfig
}
