package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "healthmate.db", c.DatabaseDSN)
	assert.Equal(t, "20:00", c.SummaryTime)
	assert.Equal(t, "notify-send", c.NotifyCommand)
	assert.Equal(t, "espeak", c.SpeechCommand)
	assert.Equal(t, 30*time.Second, c.EmailRetryMaxElapsed)
	assert.Empty(t, c.EmailHost)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "healthmate.db", cfg.DatabaseDSN)
	assert.Equal(t, "20:00", cfg.SummaryTime)
}

func Test_parseEnv_Overlays(t *testing.T) {
	t.Setenv("HEALTHMATE_DATABASE_DSN", "/tmp/other.db")
	t.Setenv("HEALTHMATE_EMAIL_PORT", "587")
	t.Setenv("HEALTHMATE_EMAIL_HOST", "smtp.example.com")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "/tmp/other.db", cfg.DatabaseDSN)
	assert.Equal(t, 587, cfg.EmailPort)
	assert.Equal(t, "smtp.example.com", cfg.EmailHost)
	assert.Equal(t, "20:00", cfg.SummaryTime, "untouched fields keep defaults")
}

func Test_parseEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("HEALTHMATE_EMAIL_PORT", "not-a-number")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 0, cfg.EmailPort)
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "/tmp/flag.db", "-t", "07:45"}

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "/tmp/flag.db", cfg.DatabaseDSN)
	assert.Equal(t, "07:45", cfg.SummaryTime)
}
