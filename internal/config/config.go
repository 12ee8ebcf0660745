package config

import (
	"fmt"
	"strings"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultLogDir          = "~/.todolist"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultSoundFrequency  = 587.0
	DefaultSoundDurationMS = 300
	DefaultEditDateTime    = "staged"
)

// Config holds the full configuration for todolist.
type Config struct {
	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Host permissions
	Notifications    bool   `toml:"notifications"`
	NotificationIcon string `toml:"notification_icon"`
	ExactAlarms      bool   `toml:"exact_alarms"`

	// Sound
	Sound           bool    `toml:"sound"`
	SoundFrequency  float64 `toml:"sound_frequency"`
	SoundDurationMS int     `toml:"sound_duration_ms"`

	// How date/time picks behave while editing: "staged" or "immediate"
	EditDateTime string `toml:"edit_date_time"`

	// Working directory (computed)
	ProjectRoot string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"notifications",
		"notification_icon",
		"exact_alarms",
		"sound",
		"sound_frequency",
		"sound_duration_ms",
		"edit_date_time",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.Notifications = true
	cfg.ExactAlarms = true
	cfg.Sound = true
	cfg.SoundFrequency = DefaultSoundFrequency
	cfg.SoundDurationMS = DefaultSoundDurationMS
	cfg.EditDateTime = DefaultEditDateTime
}

// validate checks enumerated and numeric fields.
func validate(cfg *Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("log_level %q: must be one of debug, info, warn, error, fatal", cfg.LogLevel)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format %q: must be one of text, json, logfmt", cfg.LogFormat)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.EditDateTime)) {
	case "staged", "immediate":
	default:
		return fmt.Errorf("edit_date_time %q: must be staged or immediate", cfg.EditDateTime)
	}
	if cfg.SoundFrequency <= 0 {
		return fmt.Errorf("sound_frequency must be positive, got %v", cfg.SoundFrequency)
	}
	if cfg.SoundDurationMS <= 0 {
		return fmt.Errorf("sound_duration_ms must be positive, got %d", cfg.SoundDurationMS)
	}
	return nil
}

// Values returns the printable value of every configurable field, keyed like
// the TOML file.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"log_dir":           c.LogDir,
		"log_level":         c.LogLevel,
		"log_format":        c.LogFormat,
		"log_timestamps":    fmt.Sprint(c.LogTimestamps),
		"log_caller":        fmt.Sprint(c.LogCaller),
		"notifications":     fmt.Sprint(c.Notifications),
		"notification_icon": c.NotificationIcon,
		"exact_alarms":      fmt.Sprint(c.ExactAlarms),
		"sound":             fmt.Sprint(c.Sound),
		"sound_frequency":   fmt.Sprint(c.SoundFrequency),
		"sound_duration_ms": fmt.Sprint(c.SoundDurationMS),
		"edit_date_time":    c.EditDateTime,
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
