package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	validLogLevels = map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
		"error": true, "fatal": true, "panic": true, "disabled": true, "off": true,
	}

	// Android application ids: dot-separated segments starting with a letter.
	packageNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)
)

func validateConfig(cfg *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(cfg)...)
	validationErrors = append(validationErrors, validateSource(cfg)...)
	validationErrors = append(validationErrors, validateOutput(cfg)...)
	validationErrors = append(validationErrors, validateDatabase(cfg)...)
	if cfg.Watch.DebounceMs < 0 {
		validationErrors = append(validationErrors, "watch.debounce_ms must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(cfg *Config) []string {
	var errs []string
	if !validLogLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level %q is not a known level", cfg.Logging.Level))
	}
	if cfg.Logging.MaxSizeMB < 0 {
		errs = append(errs, "logging.max_size_mb must be non-negative")
	}
	if cfg.Logging.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups must be non-negative")
	}
	if cfg.Logging.MaxAge < 0 {
		errs = append(errs, "logging.max_age must be non-negative")
	}
	if cfg.Logging.EnableFileLog && cfg.Logging.LogDir == "" {
		errs = append(errs, "logging.log_dir is required when enable_file_log is true")
	}
	return errs
}

func validateSource(cfg *Config) []string {
	if cfg.Source.URL == "" {
		return nil
	}
	u, err := url.Parse(cfg.Source.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []string{fmt.Sprintf("source.url %q must be an absolute http(s) URL", cfg.Source.URL)}
	}
	return nil
}

func validateOutput(cfg *Config) []string {
	var errs []string
	if cfg.Output.SplitCount < 1 {
		errs = append(errs, "output.split_count must be at least 1")
	}
	if cfg.Output.PackageName != "" && !packageNamePattern.MatchString(cfg.Output.PackageName) {
		errs = append(errs, fmt.Sprintf("output.package_name %q is not a valid application id", cfg.Output.PackageName))
	}
	if cfg.Output.BridgeCommand == "" && cfg.Output.Dir == "" {
		errs = append(errs, "output.dir is required when no bridge_command is set")
	}
	return errs
}

func validateDatabase(cfg *Config) []string {
	var errs []string
	if cfg.Database.KeepPerPackage < 0 {
		errs = append(errs, "database.keep_per_package must be non-negative")
	}
	if cfg.Database.Enabled && cfg.Database.Path == "" {
		errs = append(errs, "database.path is required when the database is enabled")
	}
	return errs
}

// ValidPackageName reports whether name looks like an Android application id.
func ValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}
