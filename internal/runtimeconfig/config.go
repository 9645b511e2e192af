package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrDefaultLocaleRequired    = errors.New("newshub config: default locale is required")
	ErrDefaultLocaleNotListed   = errors.New("newshub config: default locale must be listed in i18n locales")
	ErrThemeVariantInvalid      = errors.New("newshub config: theme variant must be light or dark")
	ErrMarkdownExtensionUnknown = errors.New("newshub config: markdown extension is unknown")
	ErrNavigationGroupRequired  = errors.New("newshub config: navigation default group is required when routes are configured")
	ErrLoggingProviderRequired  = errors.New("newshub config: logging provider is required")
	ErrLoggingProviderUnknown   = errors.New("newshub config: logging provider is invalid")
	ErrLoggingLevelInvalid      = errors.New("newshub config: logging level is invalid")
	ErrLoggingFormatInvalid     = errors.New("newshub config: logging format is invalid")
)

// Config aggregates the settings consumed by newshub.New.
type Config struct {
	DefaultLocale string
	I18N          I18NConfig
	Markdown      MarkdownConfig
	Themes        ThemeConfig
	Navigation    NavigationConfig
	Articles      ArticlesConfig
	Logging       LoggingConfig
}

// I18NConfig selects the locale tables. An empty FixturePath uses the
// embedded en/es/ar tables.
type I18NConfig struct {
	Locales     []string
	FixturePath string
}

// MarkdownConfig controls the renderer.
type MarkdownConfig struct {
	EscapeHTML bool
	Standard   MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// ThemeConfig selects the theme and the initial variant.
type ThemeConfig struct {
	DefaultTheme   string
	DefaultVariant string
	ManifestPath   string
}

// NavigationConfig configures go-urlkit page URLs. Navigation URLs are
// disabled when RouteConfig is nil.
type NavigationConfig struct {
	RouteConfig  *urlkit.Config
	DefaultGroup string
	LocaleGroups map[string]string
	SlugParam    string
}

// ArticlesConfig controls the article store.
type ArticlesConfig struct {
	SeedFixtures bool
	Categories   []string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// knownExtensions mirrors the goldmark extensions wired by the markdown
// package.
var knownExtensions = []string{"gfm", "table", "strikethrough", "linkify", "tasklist", "definition", "footnote", "typographer"}

// DefaultConfig returns the settings used by the CLI and tests.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		I18N: I18NConfig{
			Locales: []string{"en", "es", "ar"},
		},
		Markdown: MarkdownConfig{
			Standard: MarkdownParserConfig{
				Extensions: []string{"gfm", "linkify", "tasklist"},
			},
		},
		Themes: ThemeConfig{
			DefaultTheme:   "newshub",
			DefaultVariant: "light",
		},
		Articles: ArticlesConfig{
			SeedFixtures: true,
			Categories:   []string{"Technology", "Business", "Marketing", "Science", "Health", "Sports"},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	locale := strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))
	if locale == "" {
		return ErrDefaultLocaleRequired
	}
	if len(cfg.I18N.Locales) > 0 && !slices.ContainsFunc(cfg.I18N.Locales, func(tag string) bool {
		return strings.EqualFold(strings.TrimSpace(tag), locale)
	}) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleNotListed, locale)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Themes.DefaultVariant)) {
	case "", "light", "dark":
	default:
		return fmt.Errorf("%w: %s", ErrThemeVariantInvalid, cfg.Themes.DefaultVariant)
	}

	for _, ext := range cfg.Markdown.Standard.Extensions {
		if !slices.Contains(knownExtensions, strings.ToLower(strings.TrimSpace(ext))) {
			return fmt.Errorf("%w: %s", ErrMarkdownExtensionUnknown, ext)
		}
	}

	if cfg.Navigation.RouteConfig != nil && strings.TrimSpace(cfg.Navigation.DefaultGroup) == "" {
		return ErrNavigationGroupRequired
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
