package themes

import (
	"maps"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// Config selects the registered theme and the initial preference.
type Config struct {
	DefaultTheme   string
	DefaultVariant string
}

// Selection is the resolved theme for a preference.
type Selection struct {
	Theme      string
	Version    string
	Preference Preference
	ClassName  string
	Tokens     map[string]string
}

// Service resolves preferences against registered theme manifests.
type Service struct {
	registry  *gotheme.MemoryRegistry
	manifests map[string]*Manifest
	cfg       Config
	logger    interfaces.Logger
}

// ServiceOption customises the service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithManifest registers an additional manifest at construction.
func WithManifest(manifest *Manifest) ServiceOption {
	return func(s *Service) {
		if manifest != nil {
			s.manifests[manifest.Name] = manifest
		}
	}
}

// NewService registers the embedded theme plus any WithManifest themes.
// An empty DefaultTheme selects the embedded theme.
func NewService(cfg Config, opts ...ServiceOption) (*Service, error) {
	builtin, err := DefaultManifest()
	if err != nil {
		return nil, err
	}

	s := &Service{
		registry:  gotheme.NewRegistry(),
		manifests: map[string]*Manifest{builtin.Name: builtin},
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}

	cfg.DefaultTheme = strings.TrimSpace(cfg.DefaultTheme)
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = builtin.Name
	}
	if _, ok := ParsePreference(cfg.DefaultVariant); !ok {
		cfg.DefaultVariant = string(Light)
	}
	s.cfg = cfg

	for _, manifest := range s.manifests {
		if err := s.registry.Register(&gotheme.Manifest{Name: manifest.Name, Version: manifest.Version}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DefaultPreference is the configured initial preference.
func (s *Service) DefaultPreference() Preference {
	pref, _ := ParsePreference(s.cfg.DefaultVariant)
	return pref
}

// Select resolves pref against the default theme. Unknown preferences use
// the default preference.
func (s *Service) Select(pref Preference) Selection {
	if _, ok := ParsePreference(string(pref)); !ok {
		pref = s.DefaultPreference()
	}

	name := s.cfg.DefaultTheme
	selection := Selection{
		Theme:      name,
		Preference: pref,
		ClassName:  pref.ClassName(),
		Tokens:     map[string]string{},
	}

	selector := gotheme.Selector{
		Registry:     s.registry,
		DefaultTheme: name,
	}
	resolved, err := selector.Select(name, "")
	if err != nil {
		s.logger.Warn("themes.select.fallback", "theme", name, "error", err)
	} else if resolved != nil {
		selection.Theme = resolved.Theme
		maps.Copy(selection.Tokens, resolved.Tokens())
	}

	manifest, ok := s.manifests[selection.Theme]
	if !ok {
		manifest = s.manifests[name]
	}
	if manifest != nil {
		selection.Version = manifest.Version
		if variant, ok := manifest.Variants[string(pref)]; ok {
			maps.Copy(selection.Tokens, variant.Tokens)
			if variant.Class != "" {
				selection.ClassName = variant.Class
			}
		}
	}
	return selection
}
