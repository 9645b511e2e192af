package navigation

import (
	"context"
	"errors"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"
)

func testRouteConfig() *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"home":           "/",
					"editor":         "/editor",
					"management":     "/manage",
					"article-detail": "/articles/:slug",
				},
				Groups: []urlkit.GroupConfig{
					{
						Name: "es",
						Path: "/es",
						Paths: map[string]string{
							"home":           "/",
							"editor":         "/editor",
							"management":     "/gestion",
							"article-detail": "/articulos/:slug",
						},
					},
				},
			},
		},
	}
}

func newTestResolver() *URLResolver {
	return NewURLResolverFromConfig(testRouteConfig(), URLResolverOptions{
		DefaultGroup: "frontend",
		LocaleGroups: map[string]string{"ES": "frontend.es"},
	})
}

func TestURLResolverResolvesLocalizedRoutes(t *testing.T) {
	resolver := newTestResolver()
	ctx := context.Background()

	url, err := resolver.Resolve(ctx, ResolveRequest{Page: PageArticleDetail, Locale: "en", Slug: "future-of-remote-work"})
	if err != nil {
		t.Fatalf("Resolve en: %v", err)
	}
	if url != "https://example.com/articles/future-of-remote-work" {
		t.Fatalf("unexpected url %q", url)
	}

	url, err = resolver.Resolve(ctx, ResolveRequest{Page: PageArticleDetail, Locale: "es", Slug: "future-of-remote-work"})
	if err != nil {
		t.Fatalf("Resolve es: %v", err)
	}
	if url != "https://example.com/es/articulos/future-of-remote-work" {
		t.Fatalf("unexpected localized url %q", url)
	}
}

func TestURLResolverUnknownLocaleUsesDefaultGroup(t *testing.T) {
	url, err := newTestResolver().Resolve(context.Background(), ResolveRequest{Page: PageManagement, Locale: "ar"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if url != "https://example.com/manage" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestURLResolverErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := NewURLResolver(URLResolverOptions{}).Resolve(ctx, ResolveRequest{Page: PageHome}); !errors.Is(err, ErrRouteManagerRequired) {
		t.Fatalf("expected ErrRouteManagerRequired, got %v", err)
	}

	resolver := newTestResolver()
	if _, err := resolver.Resolve(ctx, ResolveRequest{Page: Page("settings")}); err == nil {
		t.Fatal("expected unknown page error")
	}

	missing := NewURLResolverFromConfig(testRouteConfig(), URLResolverOptions{DefaultGroup: "backend"})
	if _, err := missing.Resolve(ctx, ResolveRequest{Page: PageHome}); err == nil {
		t.Fatal("expected missing group error")
	}
}
