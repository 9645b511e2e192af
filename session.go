package newshub

import (
	"github.com/goliatone/go-newshub/internal/navigation"
	"github.com/goliatone/go-newshub/internal/themes"
)

// Session holds per-visitor UI state. It is not safe for concurrent use.
type Session struct {
	Locale LocaleConfig
	Theme  ThemeSelection
	Nav    navigation.State

	module   *Module
	themeSvc *themes.Service
}

// SetLanguage switches to tag when the module serves it. It reports whether
// the locale changed.
func (s *Session) SetLanguage(tag string) bool {
	i18nSvc := s.module.container.I18N()
	if !i18nSvc.Supports(tag) {
		return false
	}
	s.Locale = i18nSvc.Locale(tag)
	return true
}

// ToggleTheme flips between light and dark and returns the new selection.
func (s *Session) ToggleTheme() ThemeSelection {
	s.Theme = s.themeSvc.Select(s.Theme.Preference.Toggle())
	return s.Theme
}

// Translate looks key up in the session locale.
func (s *Session) Translate(key string) string {
	return s.Locale.Translate(key)
}
