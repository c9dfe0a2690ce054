package config

const (
	defaultTimeoutSeconds = 30
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultLockDir        = "~/.local/share/relocarr"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Run: Run{
			LockDir: defaultLockDir,
		},
	}
}
