package config

const (
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
	defaultCheckTimeoutSeconds = 10
	defaultCheckUserAgent      = "trackinator/0.1"
	defaultHistoryPath         = "~/.local/share/trackinator/history.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Check: Check{
			TimeoutSeconds: defaultCheckTimeoutSeconds,
			UserAgent:      defaultCheckUserAgent,
		},
		History: History{
			Enabled: false,
			Path:    defaultHistoryPath,
		},
	}
}
