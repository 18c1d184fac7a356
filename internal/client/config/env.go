package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first (missing files are fine); real
// environment variables win over .env entries, which is godotenv's default.
//
// SMTP credentials are configurable here and in JSON only, never via flags,
// so they stay out of shell history and process listings.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("HEALTHMATE_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("HEALTHMATE_TOKEN_SECRET"); v != "" {
		cfg.TokenSecret = v
	}
	if v := os.Getenv("HEALTHMATE_SUMMARY_TIME"); v != "" {
		cfg.SummaryTime = v
	}
	if v := os.Getenv("HEALTHMATE_NOTIFY_COMMAND"); v != "" {
		cfg.NotifyCommand = v
	}
	if v := os.Getenv("HEALTHMATE_SPEECH_COMMAND"); v != "" {
		cfg.SpeechCommand = v
	}
	if v := os.Getenv("HEALTHMATE_EMAIL_HOST"); v != "" {
		cfg.EmailHost = v
	}
	if v := os.Getenv("HEALTHMATE_EMAIL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.EmailPort = port
		}
	}
	if v := os.Getenv("HEALTHMATE_EMAIL_USERNAME"); v != "" {
		cfg.EmailUsername = v
	}
	if v := os.Getenv("HEALTHMATE_EMAIL_PASSWORD"); v != "" {
		cfg.EmailPassword = v
	}
	if v := os.Getenv("HEALTHMATE_EMAIL_FROM"); v != "" {
		cfg.EmailFrom = v
	}
	if v := os.Getenv("HEALTHMATE_EMAIL_TO"); v != "" {
		cfg.EmailTo = v
	}
}
