// Package config loads runtime configuration for the HealthMate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   sqlite database file
//	-t string   daily summary time (HH:MM)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "healthmate.db",
//	  "summary_time": "20:00",
//	  "notify_command": "notify-send",
//	  "speech_command": "espeak",
//	  "email_host": "smtp.example.com",
//	  "email_port": 587,
//	  "email_retry_max_elapsed": "30s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
