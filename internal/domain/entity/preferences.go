package entity

import (
	"fmt"
	"strings"
)

// Theme is the persisted color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unsupported theme %q", value)
}

// InstallPrompt tracks the one-time installable-application prompt
type InstallPrompt struct {
	Dismissed bool `json:"dismissed"`
	Installed bool `json:"installed"`
}

// ShouldShow reports whether the prompt may still be offered
func (p InstallPrompt) ShouldShow() bool {
	return !p.Dismissed && !p.Installed
}

// Preferences is everything kept in the persistent key/value store besides favorites
type Preferences struct {
	Unit          Unit          `json:"unit"`
	Theme         Theme         `json:"theme"`
	InstallPrompt InstallPrompt `json:"installPrompt"`
}

// DefaultPreferences are used when nothing was stored yet
func DefaultPreferences() Preferences {
	return Preferences{Unit: Celsius, Theme: ThemeLight}
}
