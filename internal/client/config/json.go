package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/healthmate/internal/flagx"
	"github.com/dmitrijs2005/healthmate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "30s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	TokenSecret string `json:"token_secret"`
	SummaryTime string `json:"summary_time"`

	NotifyCommand string `json:"notify_command"`
	SpeechCommand string `json:"speech_command"`

	EmailHost            string         `json:"email_host"`
	EmailPort            int            `json:"email_port"`
	EmailUsername        string         `json:"email_username"`
	EmailPassword        string         `json:"email_password"`
	EmailFrom            string         `json:"email_from"`
	EmailTo              string         `json:"email_to"`
	EmailRetryMaxElapsed timex.Duration `json:"email_retry_max_elapsed"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values in the JSON
//     leave the defaults alone.
//   - Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.TokenSecret != "" {
		cfg.TokenSecret = jc.TokenSecret
	}
	if jc.SummaryTime != "" {
		cfg.SummaryTime = jc.SummaryTime
	}
	if jc.NotifyCommand != "" {
		cfg.NotifyCommand = jc.NotifyCommand
	}
	if jc.SpeechCommand != "" {
		cfg.SpeechCommand = jc.SpeechCommand
	}
	if jc.EmailHost != "" {
		cfg.EmailHost = jc.EmailHost
	}
	if jc.EmailPort != 0 {
		cfg.EmailPort = jc.EmailPort
	}
	if jc.EmailUsername != "" {
		cfg.EmailUsername = jc.EmailUsername
	}
	if jc.EmailPassword != "" {
		cfg.EmailPassword = jc.EmailPassword
	}
	if jc.EmailFrom != "" {
		cfg.EmailFrom = jc.EmailFrom
	}
	if jc.EmailTo != "" {
		cfg.EmailTo = jc.EmailTo
	}
	if jc.EmailRetryMaxElapsed.Duration != 0 {
		cfg.EmailRetryMaxElapsed = time.Duration(jc.EmailRetryMaxElapsed.Duration)
	}
}
