package navigation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrRouteManagerRequired = errors.New("navigation: route manager not configured")

// URLResolverOptions configures the go-urlkit backed resolver.
type URLResolverOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	LocaleGroups map[string]string
	SlugParam    string
	LocaleParam  string
}

// ResolveRequest names the page to link and the locale to link it in.
type ResolveRequest struct {
	Page   Page
	Locale string
	Slug   string
	Query  map[string][]string
}

// URLResolver maps pages to URLs using route groups. Route names are page
// names; locales select nested groups through LocaleGroups.
type URLResolver struct {
	manager *urlkit.RouteManager

	defaultGroup string
	localeGroups map[string]string
	slugParam    string
	localeParam  string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLResolver constructs a resolver backed by go-urlkit.
func NewURLResolver(opts URLResolverOptions) *URLResolver {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	groups := make(map[string]string, len(opts.LocaleGroups))
	for locale, path := range opts.LocaleGroups {
		groups[strings.ToLower(strings.TrimSpace(locale))] = strings.TrimSpace(path)
	}
	return &URLResolver{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: groups,
		slugParam:    opts.SlugParam,
		localeParam:  strings.TrimSpace(opts.LocaleParam),
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// NewURLResolverFromConfig builds the route manager from cfg.
func NewURLResolverFromConfig(cfg *urlkit.Config, opts URLResolverOptions) *URLResolver {
	if cfg != nil {
		opts.Manager = urlkit.NewRouteManager(cfg)
	}
	return NewURLResolver(opts)
}

// Resolve builds the URL for req.Page.
func (r *URLResolver) Resolve(ctx context.Context, req ResolveRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r == nil || r.manager == nil {
		return "", ErrRouteManagerRequired
	}
	if _, ok := ParsePage(string(req.Page)); !ok {
		return "", fmt.Errorf("navigation: unknown page %q", req.Page)
	}

	groupPath := r.defaultGroup
	locale := strings.ToLower(strings.TrimSpace(req.Locale))
	if path, ok := r.localeGroups[locale]; ok && path != "" {
		groupPath = path
	}
	if groupPath == "" {
		return "", fmt.Errorf("navigation: no route group for locale %q", req.Locale)
	}

	group, err := r.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, string(req.Page))
	if err != nil {
		return "", err
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		builder.WithParam(r.slugParam, slug)
	}
	if r.localeParam != "" && locale != "" {
		builder.WithParam(r.localeParam, locale)
	}
	for key, values := range req.Query {
		for _, v := range values {
			builder.WithQuery(key, v)
		}
	}
	return builder.Build()
}

func (r *URLResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	current, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("navigation: route %q not available: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	if builder == nil {
		err = fmt.Errorf("navigation: route %q not available", route)
	}
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("navigation: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	if group == nil {
		err = fmt.Errorf("navigation: route group %q not found", name)
	}
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("navigation: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	if group == nil {
		err = fmt.Errorf("navigation: child group %q not found", name)
	}
	return group, err
}
