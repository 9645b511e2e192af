package runtimeconfig_test

import (
	"errors"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-newshub/internal/runtimeconfig"
)

func TestConfigValidate_DefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "missing default locale",
			mutate: func(cfg *runtimeconfig.Config) { cfg.DefaultLocale = " " },
			want:   runtimeconfig.ErrDefaultLocaleRequired,
		},
		{
			name:   "default locale not listed",
			mutate: func(cfg *runtimeconfig.Config) { cfg.DefaultLocale = "fr" },
			want:   runtimeconfig.ErrDefaultLocaleNotListed,
		},
		{
			name:   "theme variant",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Themes.DefaultVariant = "sepia" },
			want:   runtimeconfig.ErrThemeVariantInvalid,
		},
		{
			name:   "markdown extension",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Markdown.Standard.Extensions = []string{"mermaid"} },
			want:   runtimeconfig.ErrMarkdownExtensionUnknown,
		},
		{
			name: "navigation group",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Navigation.RouteConfig = &urlkit.Config{}
			},
			want: runtimeconfig.ErrNavigationGroupRequired,
		},
		{
			name:   "logging provider required",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Logging.Provider = "" },
			want:   runtimeconfig.ErrLoggingProviderRequired,
		},
		{
			name:   "logging provider unknown",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Logging.Provider = "syslog" },
			want:   runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:   "logging level",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Logging.Level = "verbose" },
			want:   runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "logging format",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Logging.Provider = "gologger"
				cfg.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_FormatIgnoredForConsole(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("console provider should ignore format, got %v", err)
	}
}

func TestConfigValidate_EmptyLocaleListAcceptsAnyDefault(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.I18N.Locales = nil
	cfg.DefaultLocale = "es"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}
