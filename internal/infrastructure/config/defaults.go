package config

const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 7

	defaultTimeoutSeconds = 15

	// The host bridge splits the payload into this many chunks.
	defaultSplitCount = 101

	defaultKeepPerPackage = 50
	defaultDebounceMs     = 300
)

// DefaultConfig returns the configuration used when no file exists.
// Paths that depend on XDG fall back to empty strings on error.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
			MaxAge:        defaultMaxAgeDays,
			Compress:      true,
		},
		Source: SourceConfig{
			Headers:        map[string]string{},
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Output: OutputConfig{
			Dir:        getDefaultOutputDir(),
			SplitCount: defaultSplitCount,
		},
		Database: DatabaseConfig{
			Enabled:        true,
			KeepPerPackage: defaultKeepPerPackage,
		},
		Watch: WatchConfig{
			DebounceMs: defaultDebounceMs,
		},
	}
}

func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

func getDefaultOutputDir() string {
	dir, err := GetOutputDir()
	if err != nil {
		return ""
	}
	return dir
}
