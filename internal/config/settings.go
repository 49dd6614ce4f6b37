package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app       fyne.App
	threshold *Threshold
}

// NewSettings creates a new settings manager. The gap threshold is loaded
// from the app preferences here, once per process.
func NewSettings(app fyne.App, opts ...ThresholdOption) *Settings {
	return &Settings{
		app:       app,
		threshold: NewThreshold(NewPreferencesStore(app.Preferences()), opts...),
	}
}

// Threshold returns the gap threshold setting
func (s *Settings) Threshold() *Threshold {
	return s.threshold
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
