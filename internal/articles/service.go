package articles

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-newshub/internal/domain"
	"github.com/goliatone/go-newshub/internal/identity"
	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// Service exposes article management use-cases.
type Service interface {
	Create(ctx context.Context, form FormData) (*Article, error)
	Update(ctx context.Context, id uuid.UUID, form FormData) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, query Query) ([]*Article, error)
	Categories() []string
	Stats(ctx context.Context) (Stats, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator derives an article id from its slug.
type IDGenerator func(slug string) uuid.UUID

// WithIDGenerator overrides article id derivation.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithCategories replaces the allowed categories.
func WithCategories(categories []string) ServiceOption {
	return func(s *service) {
		cleaned := make([]string, 0, len(categories))
		for _, category := range categories {
			category = strings.TrimSpace(category)
			if category != "" && !slices.Contains(cleaned, category) {
				cleaned = append(cleaned, category)
			}
		}
		if len(cleaned) > 0 {
			s.categories = cleaned
		}
	}
}

// WithSlugNormalizer overrides how titles become slugs.
func WithSlugNormalizer(normalizer slug.Normalizer) ServiceOption {
	return func(s *service) {
		if normalizer != nil {
			s.slugs = normalizer
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	articles   Repository
	now        func() time.Time
	id         IDGenerator
	categories []string
	slugs      slug.Normalizer
	logger     interfaces.Logger
}

// NewService constructs an article service over repo.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		articles:   repo,
		now:        time.Now,
		id:         identity.ArticleUUID,
		categories: slices.Clone(DefaultCategories),
		slugs:      slug.Default(),
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates form and stores a new article under a unique slug
// derived from the title.
func (s *service) Create(ctx context.Context, form FormData) (*Article, error) {
	if err := s.validate(form); err != nil {
		return nil, err
	}

	slugValue, err := s.uniqueSlug(ctx, form.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	record := &Article{
		ID:          s.id(slugValue),
		Slug:        slugValue,
		PublishedAt: now,
		UpdatedAt:   now,
	}
	applyForm(record, form)

	created, err := s.articles.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	logging.WithArticleContext(s.logger, created.ID.String(), created.Slug, "").
		Info("article.created", "status", string(created.Status))
	return created, nil
}

// Update replaces the editable fields of an existing article. The slug and
// id are stable; publishing a draft restamps PublishedAt.
func (s *service) Update(ctx context.Context, id uuid.UUID, form FormData) (*Article, error) {
	if id == uuid.Nil {
		return nil, ErrArticleIDRequired
	}
	if err := s.validate(form); err != nil {
		return nil, err
	}

	existing, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasPublished := existing.IsPublished()
	applyForm(existing, form)
	now := s.now().UTC()
	existing.UpdatedAt = now
	if !wasPublished && existing.IsPublished() {
		existing.PublishedAt = now
	}

	updated, err := s.articles.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	logging.WithArticleContext(s.logger, updated.ID.String(), updated.Slug, "").
		Info("article.updated", "status", string(updated.Status))
	return updated, nil
}

// Delete removes an article.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrArticleIDRequired
	}
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	logging.WithArticleContext(s.logger, id.String(), "", "").Info("article.deleted")
	return nil
}

// Get fetches an article by id.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	return s.articles.GetByID(ctx, id)
}

// GetBySlug fetches an article by slug.
func (s *service) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	return s.articles.GetBySlug(ctx, strings.TrimSpace(slug))
}

// List returns the articles matching query, newest first.
func (s *service) List(ctx context.Context, query Query) ([]*Article, error) {
	records, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.apply(records), nil
}

// Categories returns the allowed categories in display order.
func (s *service) Categories() []string {
	return slices.Clone(s.categories)
}

// Stats counts articles by status.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	records, err := s.articles.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Total: len(records)}
	for _, rec := range records {
		switch rec.Status {
		case domain.StatusPublished:
			stats.Published++
		case domain.StatusDraft:
			stats.Drafts++
		}
	}
	return stats, nil
}

func (s *service) validate(form FormData) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if !slices.Contains(s.categories, strings.TrimSpace(form.Category)) {
		return fmt.Errorf("%w: %s", ErrCategoryUnknown, form.Category)
	}
	return nil
}

// uniqueSlug normalizes title and appends -2, -3, ... until the slug is
// free or owned by self.
func (s *service) uniqueSlug(ctx context.Context, title string, self uuid.UUID) (string, error) {
	base, err := s.slugs.Normalize(title)
	if err != nil || base == "" {
		return "", ErrSlugInvalid
	}

	candidate := base
	for n := 2; ; n++ {
		existing, err := s.articles.GetBySlug(ctx, candidate)
		if err != nil {
			var notFound *NotFoundError
			if errors.As(err, &notFound) {
				return candidate, nil
			}
			return "", err
		}
		if existing.ID == self {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

func applyForm(record *Article, form FormData) {
	record.Title = strings.TrimSpace(form.Title)
	record.Content = form.Content
	record.Summary = strings.TrimSpace(form.Summary)
	record.ImageURL = strings.TrimSpace(form.ImageURL)
	record.Category = strings.TrimSpace(form.Category)
	record.Tags = make([]string, 0, len(form.Tags))
	for _, tag := range form.Tags {
		if tag = strings.TrimSpace(tag); tag != "" && !slices.Contains(record.Tags, tag) {
			record.Tags = append(record.Tags, tag)
		}
	}
	record.Status = domain.StatusDraft
	if status, ok := domain.ParseStatus(string(form.Status)); ok {
		record.Status = status
	}
	if author := strings.TrimSpace(form.Author); author != "" {
		record.Author = author
	} else if record.Author == "" {
		record.Author = DefaultAuthor
	}
}
