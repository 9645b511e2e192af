package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Config lists the locales served and the locale used when a tag is unknown.
type Config struct {
	DefaultLocale string   `json:"default_locale"`
	Locales       []string `json:"locales"`
}

// FromModuleConfig adapts runtime configuration values.
func FromModuleConfig(defaultLocale string, locales []string) Config {
	return Config{
		DefaultLocale: defaultLocale,
		Locales:       locales,
	}
}

// normalized lower-cases tags, drops duplicates and guarantees the default
// locale is listed.
func (c Config) normalized() Config {
	out := Config{DefaultLocale: NormalizeTag(c.DefaultLocale)}
	for _, tag := range c.Locales {
		tag = NormalizeTag(tag)
		if tag == "" || slices.Contains(out.Locales, tag) {
			continue
		}
		out.Locales = append(out.Locales, tag)
	}
	if out.DefaultLocale == "" && len(out.Locales) > 0 {
		out.DefaultLocale = out.Locales[0]
	}
	if out.DefaultLocale != "" && !slices.Contains(out.Locales, out.DefaultLocale) {
		out.Locales = append([]string{out.DefaultLocale}, out.Locales...)
	}
	return out
}

// NormalizeTag reduces a BCP 47 tag to its base language ("ar-EG" -> "ar").
// Unparseable input is lower-cased and trimmed.
func NormalizeTag(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return ""
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return strings.ToLower(trimmed)
	}
	base, confidence := parsed.Base()
	if confidence == language.No {
		return strings.ToLower(trimmed)
	}
	return base.String()
}
