package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-newshub/internal/runtimeconfig"
)

// ConfigOption describes one viper key with its default.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration keys and their defaults.
func GetConfigOptions() []ConfigOption {
	def := runtimeconfig.DefaultConfig()
	return []ConfigOption{
		{Key: "default_locale", Default: def.DefaultLocale, Comment: "Locale used when none is requested"},
		{Key: "i18n.locales", Default: def.I18N.Locales, Comment: "Locales served"},
		{Key: "i18n.fixture_path", Default: "", Comment: "JSON locale fixture; empty uses the built-in en/es/ar tables"},
		{Key: "markdown.escape_html", Default: def.Markdown.EscapeHTML, Comment: "Escape HTML in sources before rendering"},
		{Key: "markdown.extensions", Default: def.Markdown.Standard.Extensions, Comment: "goldmark extensions for the standard mode"},
		{Key: "markdown.hard_wraps", Default: def.Markdown.Standard.HardWraps, Comment: "Render soft line breaks as <br> in standard mode"},
		{Key: "markdown.safe_mode", Default: def.Markdown.Standard.SafeMode, Comment: "Drop raw HTML in standard mode"},
		{Key: "themes.default_theme", Default: def.Themes.DefaultTheme, Comment: "Registered theme name"},
		{Key: "themes.default_variant", Default: def.Themes.DefaultVariant, Comment: "light or dark"},
		{Key: "themes.manifest_path", Default: "", Comment: "Extra theme manifest to register"},
		{Key: "articles.seed_fixtures", Default: def.Articles.SeedFixtures, Comment: "Seed the bundled sample articles"},
		{Key: "articles.categories", Default: def.Articles.Categories, Comment: "Category choices"},
		{Key: "logging.provider", Default: def.Logging.Provider, Comment: "console or gologger"},
		{Key: "logging.level", Default: "warn", Comment: "trace|debug|info|warn|error|fatal"},
		{Key: "logging.format", Default: def.Logging.Format, Comment: "gologger format: json|console|pretty"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// LoadConfig resolves configuration with precedence: defaults < file < env.
func LoadConfig(v *viper.Viper) (runtimeconfig.Config, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("newshub")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "newshub"))
		}
		v.AddConfigPath(".")
	}
	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return runtimeconfig.Config{}, err
		}
	}

	v.SetEnvPrefix("newshub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return toRuntimeConfig(v), nil
}

func toRuntimeConfig(v *viper.Viper) runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = v.GetString("default_locale")
	cfg.I18N.Locales = stringList(v, "i18n.locales")
	cfg.I18N.FixturePath = v.GetString("i18n.fixture_path")
	cfg.Markdown.EscapeHTML = v.GetBool("markdown.escape_html")
	cfg.Markdown.Standard.Extensions = stringList(v, "markdown.extensions")
	cfg.Markdown.Standard.HardWraps = v.GetBool("markdown.hard_wraps")
	cfg.Markdown.Standard.SafeMode = v.GetBool("markdown.safe_mode")
	cfg.Themes.DefaultTheme = v.GetString("themes.default_theme")
	cfg.Themes.DefaultVariant = v.GetString("themes.default_variant")
	cfg.Themes.ManifestPath = v.GetString("themes.manifest_path")
	cfg.Articles.SeedFixtures = v.GetBool("articles.seed_fixtures")
	cfg.Articles.Categories = stringList(v, "articles.categories")
	cfg.Logging.Provider = v.GetString("logging.provider")
	cfg.Logging.Level = v.GetString("logging.level")
	cfg.Logging.Format = v.GetString("logging.format")
	return cfg
}

// stringList accepts lists from files and comma-separated env values.
func stringList(v *viper.Viper, key string) []string {
	values := v.GetStringSlice(key)
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
