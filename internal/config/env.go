package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TODOLIST_"

// envBinding maps one environment variable onto a config field.
type envBinding struct {
	field string
	set   func(cfg *Config, v string) error
}

func envBindings() []envBinding {
	str := func(dst func(*Config) *string) func(*Config, string) error {
		return func(cfg *Config, v string) error {
			*dst(cfg) = v
			return nil
		}
	}
	boolean := func(dst func(*Config) *bool) func(*Config, string) error {
		return func(cfg *Config, v string) error {
			*dst(cfg) = boolFromString(v)
			return nil
		}
	}
	return []envBinding{
		{"log_dir", str(func(c *Config) *string { return &c.LogDir })},
		{"log_level", str(func(c *Config) *string { return &c.LogLevel })},
		{"log_format", str(func(c *Config) *string { return &c.LogFormat })},
		{"log_timestamps", boolean(func(c *Config) *bool { return &c.LogTimestamps })},
		{"log_caller", boolean(func(c *Config) *bool { return &c.LogCaller })},
		{"notifications", boolean(func(c *Config) *bool { return &c.Notifications })},
		{"notification_icon", str(func(c *Config) *string { return &c.NotificationIcon })},
		{"exact_alarms", boolean(func(c *Config) *bool { return &c.ExactAlarms })},
		{"sound", boolean(func(c *Config) *bool { return &c.Sound })},
		{"sound_frequency", func(c *Config, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return err
			}
			c.SoundFrequency = f
			return nil
		}},
		{"sound_duration_ms", func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			c.SoundDurationMS = n
			return nil
		}},
		{"edit_date_time", str(func(c *Config) *string { return &c.EditDateTime })},
	}
}

// EnvName returns the environment variable for a config field.
func EnvName(field string) string {
	return EnvPrefix + strings.ToUpper(field)
}

// loadFromEnv overrides cfg from TODOLIST_* variables that are set and non-empty.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	for _, b := range envBindings() {
		name := EnvName(b.field)
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		if err := b.set(cfg, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if sources != nil {
			sources[b.field] = SourceEnv
		}
	}
	return nil
}
