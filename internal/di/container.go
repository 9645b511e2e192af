package di

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-newshub/internal/articles"
	articlescmd "github.com/goliatone/go-newshub/internal/commands/articles"
	editorcmd "github.com/goliatone/go-newshub/internal/commands/editor"
	"github.com/goliatone/go-newshub/internal/i18n"
	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/internal/logging/console"
	"github.com/goliatone/go-newshub/internal/logging/gologger"
	"github.com/goliatone/go-newshub/internal/markdown"
	"github.com/goliatone/go-newshub/internal/navigation"
	"github.com/goliatone/go-newshub/internal/runtimeconfig"
	"github.com/goliatone/go-newshub/internal/themes"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// Container wires module dependencies. It builds the default in-memory
// services and exposes hooks for host overrides.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	clock          func() time.Time
	commandReg     articlescmd.CommandRegistry

	articleRepo articles.Repository

	i18nSvc     *i18n.Service
	renderer    *markdown.Renderer
	articleSvc  articles.Service
	themeSvc    *themes.Service
	urlResolver *navigation.URLResolver

	articleCommands *articlescmd.HandlerSet
	editorCommand   *editorcmd.InsertMarkerHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the configured logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithClock overrides the article timestamps clock.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithArticleRepository swaps the in-memory article store.
func WithArticleRepository(repo articles.Repository) Option {
	return func(c *Container) {
		if repo != nil {
			c.articleRepo = repo
		}
	}
}

// WithCommandRegistry registers command handlers with reg as they are built.
func WithCommandRegistry(reg articlescmd.CommandRegistry) Option {
	return func(c *Container) {
		c.commandReg = reg
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		clock:       time.Now,
		articleRepo: articles.NewMemoryRepository(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLoggerProvider,
		c.configureI18N,
		c.configureMarkdown,
		c.configureArticles,
		c.configureThemes,
		c.configureNavigation,
		c.configureCommands,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	logging.ModuleLogger(c.loggerProvider, "newshub").Debug("container.ready",
		"default_locale", c.i18nSvc.DefaultLocale(),
		"locales", c.i18nSvc.Locales(),
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(logCfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureI18N() error {
	fixture, err := i18n.DefaultFixture()
	if path := strings.TrimSpace(c.Config.I18N.FixturePath); path != "" {
		fixture, err = i18n.NewLoader(path).Load(context.Background())
	}
	if err != nil {
		return err
	}

	locales := c.Config.I18N.Locales
	if len(locales) == 0 {
		locales = fixture.Config.Locales
	}
	svc, err := i18n.NewService(
		i18n.FromModuleConfig(c.Config.DefaultLocale, locales),
		fixture.Translations,
		i18n.WithLogger(logging.I18NLogger(c.loggerProvider)),
	)
	if err != nil {
		return err
	}
	c.i18nSvc = svc
	return nil
}

func (c *Container) configureMarkdown() error {
	std := c.Config.Markdown.Standard
	c.renderer = markdown.NewRenderer(markdown.Options{
		EscapeHTML: c.Config.Markdown.EscapeHTML,
		Standard: interfaces.ParseOptions{
			Extensions: std.Extensions,
			HardWraps:  std.HardWraps,
			SafeMode:   std.SafeMode,
		},
		Logger: logging.MarkdownLogger(c.loggerProvider),
	})
	return nil
}

func (c *Container) configureArticles() error {
	logger := logging.ArticlesLogger(c.loggerProvider)
	opts := []articles.ServiceOption{
		articles.WithClock(c.clock),
		articles.WithLogger(logger),
	}
	if len(c.Config.Articles.Categories) > 0 {
		opts = append(opts, articles.WithCategories(c.Config.Articles.Categories))
	}
	c.articleSvc = articles.NewService(c.articleRepo, opts...)

	if !c.Config.Articles.SeedFixtures {
		return nil
	}
	if err := articles.SeedFixtures(context.Background(), c.articleRepo); err != nil {
		return fmt.Errorf("di: seed article fixtures: %w", err)
	}
	logger.Debug("articles.seeded")
	return nil
}

func (c *Container) configureThemes() error {
	opts := []themes.ServiceOption{themes.WithLogger(logging.ThemesLogger(c.loggerProvider))}
	if path := strings.TrimSpace(c.Config.Themes.ManifestPath); path != "" {
		manifest, err := themes.LoadManifest(path)
		if err != nil {
			return err
		}
		opts = append(opts, themes.WithManifest(manifest))
	}
	svc, err := themes.NewService(themes.Config{
		DefaultTheme:   c.Config.Themes.DefaultTheme,
		DefaultVariant: c.Config.Themes.DefaultVariant,
	}, opts...)
	if err != nil {
		return err
	}
	c.themeSvc = svc
	return nil
}

func (c *Container) configureNavigation() error {
	navCfg := c.Config.Navigation
	if navCfg.RouteConfig == nil {
		return nil
	}
	c.urlResolver = navigation.NewURLResolverFromConfig(navCfg.RouteConfig, navigation.URLResolverOptions{
		DefaultGroup: navCfg.DefaultGroup,
		LocaleGroups: navCfg.LocaleGroups,
		SlugParam:    navCfg.SlugParam,
	})
	return nil
}

func (c *Container) configureCommands() error {
	set, err := articlescmd.RegisterArticleCommands(c.commandReg, c.articleSvc, c.loggerProvider)
	if err != nil {
		return err
	}
	c.articleCommands = set

	c.editorCommand = editorcmd.NewInsertMarkerHandler(logging.EditorLogger(c.loggerProvider))
	if c.commandReg != nil {
		if err := c.commandReg.RegisterCommand(c.editorCommand); err != nil {
			return err
		}
	}
	return nil
}

// LoggerProvider returns the active logging provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// I18N returns the locale service.
func (c *Container) I18N() *i18n.Service { return c.i18nSvc }

// Renderer returns the markdown renderer.
func (c *Container) Renderer() *markdown.Renderer { return c.renderer }

// Articles returns the article service.
func (c *Container) Articles() articles.Service { return c.articleSvc }

// Themes returns the theme service.
func (c *Container) Themes() *themes.Service { return c.themeSvc }

// URLResolver returns the page URL resolver, or nil when no routes are
// configured.
func (c *Container) URLResolver() *navigation.URLResolver { return c.urlResolver }

// ArticleCommands returns the article command handlers.
func (c *Container) ArticleCommands() *articlescmd.HandlerSet { return c.articleCommands }

// EditorCommand returns the toolbar insertion handler.
func (c *Container) EditorCommand() *editorcmd.InsertMarkerHandler { return c.editorCommand }
