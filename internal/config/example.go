package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todolist configuration file
# Values can be overridden by environment variables (TODOLIST_*) or CLI flags

# Log directory (supports ~ expansion and %VAR% on Windows)
log_dir = "~/.todolist"

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "text"

# Include timestamps and caller locations in log lines
log_timestamps = false
log_caller = false

# Post a desktop notification when a task is added
notifications = true

# Optional icon for notifications
# notification_icon = "~/.todolist/icon.png"

# Allow exact alarms; when false, alarm requests are denied
exact_alarms = true

# Play a tone when a task is added and when an alarm fires
sound = true
sound_frequency = 587.0
sound_duration_ms = 300

# Date/time picks while editing a task:
#   staged    - kept until the task is confirmed; cancel discards them
#   immediate - written to the task at once; cancel keeps them
edit_date_time = "staged"
`
}
