package config

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var categoryCaser = cases.Title(language.English, cases.NoLower)

func (c *Config) normalize() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return err
		}
		c.Logging.File = expanded
	}

	if c.Organize.RetryAttempts <= 0 {
		c.Organize.RetryAttempts = defaultRetryAttempts
	}
	if c.Organize.RetryDelayMS <= 0 {
		c.Organize.RetryDelayMS = defaultRetryDelayMS
	}

	for i := range c.Categories {
		name := strings.TrimSpace(c.Categories[i].Name)
		// "images" and "Images" in a config file mean the same bucket.
		c.Categories[i].Name = categoryCaser.String(name)
		for j, ext := range c.Categories[i].Extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext != "" && !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			c.Categories[i].Extensions[j] = ext
		}
	}
	return nil
}
