package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
)

func newSettingsService(t *testing.T) (*SettingsService, *fakeApplier) {
	t.Helper()
	applier := &fakeApplier{}
	return NewSettingsService(setupDB(t), applier, newTestLogger()), applier
}

func boolPtr(v bool) *bool { return &v }

func TestSettings_DefaultsBeforeLoad(t *testing.T) {
	s, _ := newSettingsService(t)

	got := s.Current()
	assert.False(t, got.DarkMode)
	assert.True(t, got.TTSEnabled)
	assert.True(t, got.AITipsEnabled)
	assert.False(t, got.EmailNotifications)
	assert.False(t, got.SMSNotifications)
	assert.True(t, got.BrowserNotifications)
}

func TestSettingsLoad_NoRecordKeepsDefaults(t *testing.T) {
	s, applier := newSettingsService(t)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, models.DefaultSettings(), s.Current())
	assert.Empty(t, applier.Calls)
}

func TestSettingsLoad_AdoptsRecordWholesale(t *testing.T) {
	s, applier := newSettingsService(t)
	ctx := context.Background()

	setRaw(t, s.db, keySettings, []byte(`{"darkMode":true,"ttsEnabled":false}`))
	require.NoError(t, s.Load(ctx))

	got := s.Current()
	assert.True(t, got.DarkMode)
	assert.False(t, got.TTSEnabled)
	// запись принимается целиком, дефолты не домешиваются
	assert.False(t, got.BrowserNotifications)

	assert.Equal(t, []bool{true}, applier.Calls)
}

func TestSettingsLoad_CorruptRecordKeepsDefaults(t *testing.T) {
	s, _ := newSettingsService(t)

	setRaw(t, s.db, keySettings, []byte("not-json"))
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, models.DefaultSettings(), s.Current())
}

func TestSettingsUpdate_PersistsPatchLeavingOthersUntouched(t *testing.T) {
	s, applier := newSettingsService(t)
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	require.NoError(t, s.Update(ctx, models.SettingsPatch{DarkMode: boolPtr(true)}))

	got := s.Current()
	assert.True(t, got.DarkMode)
	assert.True(t, got.TTSEnabled)
	assert.True(t, got.BrowserNotifications)

	var persisted models.Settings
	require.NoError(t, json.Unmarshal(getRaw(t, s.db, keySettings), &persisted))
	assert.True(t, persisted.DarkMode)
	assert.True(t, persisted.TTSEnabled)
	assert.True(t, persisted.AITipsEnabled)
	assert.False(t, persisted.EmailNotifications)

	assert.Equal(t, []bool{true}, applier.Calls)
}

func TestSettingsUpdate_NilDarkModeSkipsApplier(t *testing.T) {
	s, applier := newSettingsService(t)
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, models.SettingsPatch{TTSEnabled: boolPtr(false)}))
	assert.Empty(t, applier.Calls)
	assert.False(t, s.Current().TTSEnabled)
}

func TestToggleDarkMode(t *testing.T) {
	s, applier := newSettingsService(t)
	ctx := context.Background()

	require.NoError(t, s.ToggleDarkMode(ctx))
	assert.True(t, s.Current().DarkMode)

	require.NoError(t, s.ToggleDarkMode(ctx))
	assert.False(t, s.Current().DarkMode)

	assert.Equal(t, []bool{true, false}, applier.Calls)
}

func TestSettings_PersistAcrossInstances(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first := NewSettingsService(db, nil, newTestLogger())
	require.NoError(t, first.Update(ctx, models.SettingsPatch{
		DarkMode:           boolPtr(true),
		EmailNotifications: boolPtr(true),
	}))

	second := NewSettingsService(db, nil, newTestLogger())
	require.NoError(t, second.Load(ctx))

	got := second.Current()
	assert.True(t, got.DarkMode)
	assert.True(t, got.EmailNotifications)
	assert.True(t, got.TTSEnabled)
}
