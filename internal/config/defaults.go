package config

const (
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRetryAttempts = 3
	defaultRetryDelayMS  = 150
)

// Default returns a Config populated with repository defaults. Categories is
// left empty so the built-in rule table applies.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Organize: Organize{
			RetryAttempts: defaultRetryAttempts,
			RetryDelayMS:  defaultRetryDelayMS,
		},
	}
}
