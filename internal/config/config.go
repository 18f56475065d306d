// Package config loads application configuration from environment variables.
package config

import "os"

// Config holds runtime configuration for the box-office server. Each field
// corresponds to an environment variable; unset variables fall back to the
// defaults noted below.
type Config struct {
	Env           string // APP_ENV, application environment (default "dev")
	Port          string // APP_PORT, HTTP port to listen on (default "8080")
	ScheduleFile  string // SCHEDULE_FILE, optional JSON programme override
	EventsEnabled bool   // EVENTS_ENABLED, publish reservation events over AMQP
}

// Load reads the application config from the environment.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		ScheduleFile:  os.Getenv("SCHEDULE_FILE"),
		EventsEnabled: getenv("EVENTS_ENABLED", "false") == "true",
	}
}
