package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"sortd/internal/config"
	"sortd/internal/logging"
	"sortd/internal/organize"
	"sortd/internal/rules"
)

// commandContext lazily loads configuration and shared collaborators for the
// subcommands. Configuration problems degrade to defaults with a warning;
// they never abort a run.
type commandContext struct {
	configFlag *string

	once   sync.Once
	config *config.Config
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() *config.Config {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: config unusable (%v); using defaults\n", err)
			fallback := config.Default()
			cfg = &fallback
		}
		c.config = cfg
	})
	return c.config
}

// table resolves the effective rule table, falling back to the built-in one
// when the configured table fails validation.
func (c *commandContext) table() rules.Table {
	cfg := c.ensureConfig()
	table, err := cfg.Table()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: rule table invalid (%v); using built-in rules\n", err)
		return rules.Default()
	}
	return table
}

func (c *commandContext) logger() *slog.Logger {
	cfg := c.ensureConfig()
	outputs := []string{"stderr"}
	if cfg.Logging.File != "" {
		outputs = append(outputs, cfg.Logging.File)
	}
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logger setup failed (%v); logging disabled\n", err)
		return logging.NewNop()
	}
	return logger
}

func (c *commandContext) retryPolicy() organize.RetryPolicy {
	cfg := c.ensureConfig()
	return organize.RetryPolicy{
		Attempts: cfg.Organize.RetryAttempts,
		Delay:    time.Duration(cfg.Organize.RetryDelayMS) * time.Millisecond,
	}
}
