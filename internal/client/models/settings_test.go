package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.False(t, s.DarkMode)
	assert.True(t, s.TTSEnabled)
	assert.True(t, s.AITipsEnabled)
	assert.False(t, s.EmailNotifications)
	assert.False(t, s.SMSNotifications)
	assert.True(t, s.BrowserNotifications)
}

func TestSettingsPatch_ApplyPartial(t *testing.T) {
	s := DefaultSettings()
	dark := true

	SettingsPatch{DarkMode: &dark}.Apply(&s)

	assert.True(t, s.DarkMode)
	// остальные поля не тронуты
	assert.True(t, s.TTSEnabled)
	assert.True(t, s.AITipsEnabled)
	assert.False(t, s.EmailNotifications)
	assert.False(t, s.SMSNotifications)
	assert.True(t, s.BrowserNotifications)
}

func TestSettingsPatch_ApplyAll(t *testing.T) {
	s := DefaultSettings()
	f, tr := false, true

	SettingsPatch{
		DarkMode:             &tr,
		TTSEnabled:           &f,
		AITipsEnabled:        &f,
		EmailNotifications:   &tr,
		SMSNotifications:     &tr,
		BrowserNotifications: &f,
	}.Apply(&s)

	assert.Equal(t, Settings{
		DarkMode:             true,
		TTSEnabled:           false,
		AITipsEnabled:        false,
		EmailNotifications:   true,
		SMSNotifications:     true,
		BrowserNotifications: false,
	}, s)
}

func TestSettings_JSONRoundTrip(t *testing.T) {
	orig := Settings{
		DarkMode:             true,
		TTSEnabled:           false,
		AITipsEnabled:        true,
		EmailNotifications:   true,
		SMSNotifications:     false,
		BrowserNotifications: false,
	}

	b, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Settings
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, orig, back)
}
