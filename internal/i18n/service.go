package i18n

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// ErrDefaultLocaleRequired is returned when neither a default nor any locale
// is configured.
var ErrDefaultLocaleRequired = errors.New("i18n: default locale is required")

// ErrLocaleTableMissing is returned when a configured locale has no table.
var ErrLocaleTableMissing = errors.New("i18n: locale table missing")

// Service holds the immutable locale tables.
type Service struct {
	cfg     Config
	locales map[string]LocaleConfig
	logger  interfaces.Logger
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

// NewService builds locale configs for every configured locale. Tables for
// locales not listed in cfg are ignored.
func NewService(cfg Config, translations map[string]map[string]string, opts ...ServiceOption) (*Service, error) {
	cfg = cfg.normalized()
	if cfg.DefaultLocale == "" {
		return nil, ErrDefaultLocaleRequired
	}

	tables := make(map[string]map[string]string, len(translations))
	for tag, table := range translations {
		tables[NormalizeTag(tag)] = table
	}

	svc := &Service{
		cfg:     cfg,
		locales: make(map[string]LocaleConfig, len(cfg.Locales)),
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	for _, tag := range cfg.Locales {
		table, ok := tables[tag]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLocaleTableMissing, tag)
		}
		svc.locales[tag] = NewLocaleConfig(tag, table)
	}

	svc.logger.Debug("i18n.service.ready", "default_locale", cfg.DefaultLocale, "locales", cfg.Locales)
	return svc, nil
}

// NewDefaultService builds a service from the embedded en/es/ar tables.
func NewDefaultService(opts ...ServiceOption) (*Service, error) {
	fx, err := DefaultFixture()
	if err != nil {
		return nil, err
	}
	return NewService(fx.Config, fx.Translations, opts...)
}

// DefaultLocale returns the fallback locale tag.
func (s *Service) DefaultLocale() string {
	return s.cfg.DefaultLocale
}

// Locales returns the configured locale tags in order.
func (s *Service) Locales() []string {
	return slices.Clone(s.cfg.Locales)
}

// Supports reports whether tag resolves to a configured locale.
func (s *Service) Supports(tag string) bool {
	_, ok := s.locales[NormalizeTag(tag)]
	return ok
}

// Locale resolves tag, falling back to the default locale when it is not
// configured.
func (s *Service) Locale(tag string) LocaleConfig {
	normalized := NormalizeTag(tag)
	if cfg, ok := s.locales[normalized]; ok {
		return cfg
	}
	if normalized != "" {
		s.logger.Debug("i18n.locale.fallback", "requested", tag, "default_locale", s.cfg.DefaultLocale)
	}
	return s.locales[s.cfg.DefaultLocale]
}

// Translate is a convenience for Locale(tag).Translate(key).
func (s *Service) Translate(tag, key string) string {
	return s.Locale(tag).Translate(key)
}
