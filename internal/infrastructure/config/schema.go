package config

// Config is the tool configuration read from config.toml.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Source   SourceConfig   `mapstructure:"source" toml:"source" json:"source"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Tables points at an optional TOML file overriding the built-in lookup tables.
	Tables TablesConfig `mapstructure:"tables" toml:"tables" json:"tables"`
	Watch  WatchConfig  `mapstructure:"watch" toml:"watch" json:"watch"`
}

// LoggingConfig controls console and file logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0,description=Days to keep rotated logs"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// SourceConfig says where the clone configuration comes from.
// URL wins over Path when both are set.
type SourceConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
	URL  string `mapstructure:"url" toml:"url" json:"url"`
	// Headers are sent with every HTTP request, e.g. X-Master-Key.
	Headers        map[string]string `mapstructure:"headers" toml:"headers" json:"headers"`
	TimeoutSeconds int               `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" jsonschema:"minimum=1"`
}

// OutputConfig controls where flattened payloads go.
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir" json:"dir"`
	// BridgeCommand receives the payload on stdin; empty writes files to Dir.
	BridgeCommand string `mapstructure:"bridge_command" toml:"bridge_command" json:"bridge_command"`
	SplitCount    int    `mapstructure:"split_count" toml:"split_count" json:"split_count" jsonschema:"minimum=1"`
	PackageName   string `mapstructure:"package_name" toml:"package_name" json:"package_name"`
}

// DatabaseConfig controls the save history store.
type DatabaseConfig struct {
	Enabled        bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Path           string `mapstructure:"path" toml:"path" json:"path"`
	KeepPerPackage int    `mapstructure:"keep_per_package" toml:"keep_per_package" json:"keep_per_package" jsonschema:"minimum=0"`
}

// TablesConfig points at a lookup table override file.
type TablesConfig struct {
	File string `mapstructure:"file" toml:"file" json:"file"`
}

// WatchConfig tunes the input file watcher.
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" jsonschema:"minimum=0"`
}
