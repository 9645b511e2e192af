package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-newshub/pkg/interfaces"
)

const (
	rootModule       = "newshub"
	articlesModule   = "newshub.articles"
	markdownModule   = "newshub.markdown"
	editorModule     = "newshub.editor"
	i18nModule       = "newshub.i18n"
	navigationModule = "newshub.navigation"
	themesModule     = "newshub.themes"
	commandsModule   = "newshub.commands"
)

// CommandsModule prefixes command handler logger names.
const CommandsModule = commandsModule

const (
	fieldArticleID   = "article_id"
	fieldArticleSlug = "slug"
	fieldLocale      = "locale"
)

// ModuleLogger returns a module-scoped logger, falling back to a no-op
// logger when no provider is supplied. The module name is attached as the
// "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ArticlesLogger returns the logger reserved for the articles service.
func ArticlesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, articlesModule)
}

// MarkdownLogger returns the logger reserved for markdown rendering.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// EditorLogger returns the logger reserved for toolbar insertions.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// I18NLogger returns the logger reserved for locale tables.
func I18NLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, i18nModule)
}

// NavigationLogger returns the logger reserved for page routing.
func NavigationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, navigationModule)
}

// ThemesLogger returns the logger reserved for theme selection.
func ThemesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, themesModule)
}

// CommandsLogger returns the logger reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithArticleContext enriches logger with article id, slug and locale.
// Empty values are skipped.
func WithArticleContext(logger interfaces.Logger, id, slug, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		fields[fieldArticleID] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldArticleSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
