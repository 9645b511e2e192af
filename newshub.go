package newshub

import (
	"context"

	"github.com/goliatone/go-newshub/internal/articles"
	articlescmd "github.com/goliatone/go-newshub/internal/commands/articles"
	editorcmd "github.com/goliatone/go-newshub/internal/commands/editor"
	"github.com/goliatone/go-newshub/internal/di"
	"github.com/goliatone/go-newshub/internal/i18n"
	"github.com/goliatone/go-newshub/internal/markdown"
	"github.com/goliatone/go-newshub/internal/navigation"
	"github.com/goliatone/go-newshub/internal/themes"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// ArticleService exports the articles service contract.
type ArticleService = articles.Service

// Article exports the article record.
type Article = articles.Article

// ArticleForm exports the editor form payload.
type ArticleForm = articles.FormData

// LocaleConfig exports the explicit locale value.
type LocaleConfig = i18n.LocaleConfig

// ThemeSelection exports the resolved theme.
type ThemeSelection = themes.Selection

// Option customises the underlying container.
type Option = di.Option

var (
	WithLoggerProvider    = di.WithLoggerProvider
	WithClock             = di.WithClock
	WithArticleRepository = di.WithArticleRepository
	WithCommandRegistry   = di.WithCommandRegistry
)

// Module is the top level newshub runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module from cfg.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Articles returns the article service.
func (m *Module) Articles() ArticleService {
	return m.container.Articles()
}

// Renderer returns the markdown renderer configured for the module.
func (m *Module) Renderer() interfaces.MarkdownRenderer {
	return m.container.Renderer()
}

// Render converts text with the module renderer.
func (m *Module) Render(text string, mode markdown.Mode) string {
	return m.container.Renderer().Render(text, mode)
}

// Locales returns the served locale tags, default first.
func (m *Module) Locales() []string {
	return m.container.I18N().Locales()
}

// Locale returns the locale for tag, falling back to the default locale.
func (m *Module) Locale(tag string) LocaleConfig {
	return m.container.I18N().Locale(tag)
}

// ArticleCommands returns the article command handlers.
func (m *Module) ArticleCommands() *articlescmd.HandlerSet {
	return m.container.ArticleCommands()
}

// EditorCommand returns the toolbar insertion handler.
func (m *Module) EditorCommand() *editorcmd.InsertMarkerHandler {
	return m.container.EditorCommand()
}

// PageURL resolves the URL for page in locale. It returns
// navigation.ErrRouteManagerRequired when no routes are configured.
func (m *Module) PageURL(ctx context.Context, locale string, page navigation.Page, slug string) (string, error) {
	return m.container.URLResolver().Resolve(ctx, navigation.ResolveRequest{
		Page:   page,
		Locale: locale,
		Slug:   slug,
	})
}

// NewSession starts a session on the default locale, the configured theme
// preference and the home page.
func (m *Module) NewSession() *Session {
	themeSvc := m.container.Themes()
	pref := themeSvc.DefaultPreference()
	return &Session{
		Locale:   m.container.I18N().Locale(m.container.I18N().DefaultLocale()),
		Theme:    themeSvc.Select(pref),
		Nav:      navigation.NewState(),
		module:   m,
		themeSvc: themeSvc,
	}
}
