package i18n

import "github.com/goliatone/go-newshub/pkg/interfaces"

// LocaleConfig is the explicit locale value handed to locale-aware code.
type LocaleConfig struct {
	Tag       string
	Direction interfaces.Direction
	// Lookup returns the raw table entry for key.
	Lookup func(key string) (string, bool)
}

var _ interfaces.LocaleProvider = LocaleConfig{}

// NewLocaleConfig builds a LocaleConfig over a static table. The table is
// copied.
func NewLocaleConfig(tag string, table map[string]string) LocaleConfig {
	tag = NormalizeTag(tag)
	entries := make(map[string]string, len(table))
	for k, v := range table {
		entries[k] = v
	}
	return LocaleConfig{
		Tag:       tag,
		Direction: DirectionFor(tag),
		Lookup: func(key string) (string, bool) {
			v, ok := entries[key]
			return v, ok
		},
	}
}

// Translate returns the entry for key, or key itself when the entry is
// missing or empty.
func (l LocaleConfig) Translate(key string) string {
	if l.Lookup == nil {
		return key
	}
	if v, ok := l.Lookup(key); ok && v != "" {
		return v
	}
	return key
}

// IsRTL reports whether the locale reads right to left.
func (l LocaleConfig) IsRTL() bool {
	return l.Direction == interfaces.DirectionRTL
}

// IsRTL is true only for Arabic tags.
func IsRTL(tag string) bool {
	return NormalizeTag(tag) == "ar"
}

// DirectionFor maps a tag onto its reading direction.
func DirectionFor(tag string) interfaces.Direction {
	if IsRTL(tag) {
		return interfaces.DirectionRTL
	}
	return interfaces.DirectionLTR
}
