package newshub

import "github.com/goliatone/go-newshub/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired    = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleNotListed   = runtimeconfig.ErrDefaultLocaleNotListed
	ErrThemeVariantInvalid      = runtimeconfig.ErrThemeVariantInvalid
	ErrMarkdownExtensionUnknown = runtimeconfig.ErrMarkdownExtensionUnknown
	ErrNavigationGroupRequired  = runtimeconfig.ErrNavigationGroupRequired
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	I18NConfig           = runtimeconfig.I18NConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	ThemeConfig          = runtimeconfig.ThemeConfig
	NavigationConfig     = runtimeconfig.NavigationConfig
	ArticlesConfig       = runtimeconfig.ArticlesConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
