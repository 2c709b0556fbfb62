// Package config loads clonecfg's own settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager loads, saves and watches the configuration file.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithConfigDir reads config.toml from dir instead of the XDG config directory.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.configDir = dir
	}
}

// NewManager creates a configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
	}

	v := m.viper
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(m.configDir)

	// CLONECFG_OUTPUT_PACKAGE_NAME, CLONECFG_DATABASE_PATH, ...
	v.SetEnvPrefix("CLONECFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CLONECFG_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CLONECFG_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CLONECFG_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CLONECFG_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load reads the file, creating it with defaults when missing, then applies
// environment overrides, normalizes and validates.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.GetConfigFile(), err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf("failed to create default config at %s: %w", m.configDir, createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return cfg, nil
}

func ensureDatabasePath(cfg *Config) error {
	if cfg.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	cfg.Database.Path = dbPath
	return nil
}

func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
	case "json":
		cfg.Logging.Format = "json"
	default:
		cfg.Logging.Format = defaultLogFormat
	}

	cfg.Source.Path = expandHome(strings.TrimSpace(cfg.Source.Path))
	cfg.Source.URL = strings.TrimSpace(cfg.Source.URL)
	if cfg.Source.Headers == nil {
		cfg.Source.Headers = map[string]string{}
	}
	if cfg.Source.TimeoutSeconds <= 0 {
		cfg.Source.TimeoutSeconds = defaultTimeoutSeconds
	}

	cfg.Output.Dir = expandHome(strings.TrimSpace(cfg.Output.Dir))
	cfg.Output.BridgeCommand = strings.TrimSpace(cfg.Output.BridgeCommand)
	cfg.Output.PackageName = strings.TrimSpace(cfg.Output.PackageName)
	if cfg.Output.SplitCount == 0 {
		cfg.Output.SplitCount = defaultSplitCount
	}

	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Tables.File = expandHome(strings.TrimSpace(cfg.Tables.File))
	cfg.Logging.LogDir = expandHome(cfg.Logging.LogDir)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns the loaded configuration, or defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := ensureDatabasePath(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := WriteConfigOrdered(cfg, m.GetConfigFile()); err != nil {
		return err
	}
	m.skipNextReload = m.watching
	m.config = cfg
	return nil
}

// GetConfigFile returns the config file path.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// ConfigDir returns the directory holding config.toml.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

func (m *Manager) createDefaultConfig() error {
	path := filepath.Join(m.configDir, configName)
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return err
	}
	return WriteSchemaFile(filepath.Join(m.configDir, schemaName))
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("source.path", defaults.Source.Path)
	m.viper.SetDefault("source.url", defaults.Source.URL)
	m.viper.SetDefault("source.timeout_seconds", defaults.Source.TimeoutSeconds)

	m.viper.SetDefault("output.dir", defaults.Output.Dir)
	m.viper.SetDefault("output.bridge_command", defaults.Output.BridgeCommand)
	m.viper.SetDefault("output.split_count", defaults.Output.SplitCount)
	m.viper.SetDefault("output.package_name", defaults.Output.PackageName)

	m.viper.SetDefault("database.enabled", defaults.Database.Enabled)
	m.viper.SetDefault("database.keep_per_package", defaults.Database.KeepPerPackage)

	m.viper.SetDefault("tables.file", defaults.Tables.File)
	m.viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
}
