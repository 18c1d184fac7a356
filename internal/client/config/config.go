package config

import "time"

// Config holds runtime settings for the HealthMate CLI.
//
// Fields:
//   - DatabaseDSN: sqlite file (or DSN) backing the local key-value store.
//   - TokenSecret: signing key for locally issued session tokens.
//   - SummaryTime: wall-clock "HH:MM" at which the daily summary fires.
//   - NotifyCommand: desktop notification binary (notify-send style).
//   - SpeechCommand: text-to-speech binary (espeak style).
//   - Email*: optional SMTP delivery settings; email stays off while Host,
//     Port, From or To are empty.
//
// Units: EmailRetryMaxElapsed is a time.Duration (e.g. 30*time.Second).
type Config struct {
	DatabaseDSN string
	TokenSecret string
	SummaryTime string

	NotifyCommand string
	SpeechCommand string

	EmailHost            string
	EmailPort            int
	EmailUsername        string
	EmailPassword        string
	EmailFrom            string
	EmailTo              string
	EmailRetryMaxElapsed time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "healthmate.db"
	c.TokenSecret = "healthmate-local-secret"
	c.SummaryTime = "20:00"
	c.NotifyCommand = "notify-send"
	c.SpeechCommand = "espeak"
	c.EmailRetryMaxElapsed = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
