package config

import (
	"flag"
	"strings"
)

// RegisterFlags binds the config flags on fs to cfg.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory for run logs")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log lines")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log lines")
	fs.BoolVar(&cfg.Notifications, "notifications", cfg.Notifications, "Post desktop notifications")
	fs.StringVar(&cfg.NotificationIcon, "notification-icon", cfg.NotificationIcon, "Icon path for notifications")
	fs.BoolVar(&cfg.ExactAlarms, "exact-alarms", cfg.ExactAlarms, "Allow scheduling exact alarms")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sounds")
	fs.Float64Var(&cfg.SoundFrequency, "sound-frequency", cfg.SoundFrequency, "Notification tone frequency in Hz")
	fs.IntVar(&cfg.SoundDurationMS, "sound-duration-ms", cfg.SoundDurationMS, "Notification tone length in milliseconds")
	fs.StringVar(&cfg.EditDateTime, "edit-date-time", cfg.EditDateTime, "Date/time picks while editing: staged or immediate")
}

// parseFlags registers the config flags on fs and parses args into cfg.
// A nil fs skips flag parsing.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		return nil
	}
	RegisterFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if sources == nil {
			return
		}
		field := strings.ReplaceAll(f.Name, "-", "_")
		if _, ok := sources[field]; ok {
			sources[field] = SourceFlag
		}
	})
	return nil
}
