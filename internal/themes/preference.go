package themes

import "strings"

// Preference is the user's colour scheme choice.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// ParsePreference accepts "light" or "dark" in any case.
func ParsePreference(input string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(input))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Toggle returns the opposite preference. Unknown values toggle to dark.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// ClassName is the root element class for the preference.
func (p Preference) ClassName() string {
	if p == Dark {
		return "dark"
	}
	return ""
}
