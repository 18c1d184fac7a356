package models

// Settings is the flat record of user-facing toggles. It is always fully
// populated: missing keys only exist transiently while loading, and the
// defaults fill the gap before a durable record is found.
type Settings struct {
	DarkMode             bool `json:"darkMode"`
	TTSEnabled           bool `json:"ttsEnabled"`
	AITipsEnabled        bool `json:"aiTipsEnabled"`
	EmailNotifications   bool `json:"emailNotifications"`
	SMSNotifications     bool `json:"smsNotifications"`
	BrowserNotifications bool `json:"browserNotifications"`
}

// DefaultSettings returns the initial in-memory configuration.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:             false,
		TTSEnabled:           true,
		AITipsEnabled:        true,
		EmailNotifications:   false,
		SMSNotifications:     false,
		BrowserNotifications: true,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	DarkMode             *bool
	TTSEnabled           *bool
	AITipsEnabled        *bool
	EmailNotifications   *bool
	SMSNotifications     *bool
	BrowserNotifications *bool
}

// Apply merges the patch onto s, field by field.
func (p SettingsPatch) Apply(s *Settings) {
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.TTSEnabled != nil {
		s.TTSEnabled = *p.TTSEnabled
	}
	if p.AITipsEnabled != nil {
		s.AITipsEnabled = *p.AITipsEnabled
	}
	if p.EmailNotifications != nil {
		s.EmailNotifications = *p.EmailNotifications
	}
	if p.SMSNotifications != nil {
		s.SMSNotifications = *p.SMSNotifications
	}
	if p.BrowserNotifications != nil {
		s.BrowserNotifications = *p.BrowserNotifications
	}
}
