package config

import (
	"fyne.io/fyne/v2"
)

// Theme values
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyTheme    = "@solar_for_you_theme"
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultTheme    = ThemeLight
	DefaultLanguage = "pl"
)

// Settings manages user-facing preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTheme returns the configured theme
func (s *Settings) GetTheme() Theme {
	value := s.app.Preferences().String(KeyTheme)
	if value != string(ThemeDark) && value != string(ThemeLight) {
		s.SetTheme(DefaultTheme)
		return DefaultTheme
	}
	return Theme(value)
}

// SetTheme sets the theme
func (s *Settings) SetTheme(theme Theme) {
	s.app.Preferences().SetString(KeyTheme, string(theme))
}

// ToggleTheme switches between light and dark and returns the new value
func (s *Settings) ToggleTheme() Theme {
	next := ThemeDark
	if s.GetTheme() == ThemeDark {
		next = ThemeLight
	}
	s.SetTheme(next)
	return next
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
		"pl": "Polski",
		"en": "English",
		"uk": "Українська",
	}
}
