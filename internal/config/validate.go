package config

import "fmt"

const maxRetryAttempts = 10

// Validate checks configuration values that normalize could not repair.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Organize.RetryAttempts > maxRetryAttempts {
		return fmt.Errorf("organize.retry_attempts: %d exceeds maximum %d", c.Organize.RetryAttempts, maxRetryAttempts)
	}
	return nil
}
