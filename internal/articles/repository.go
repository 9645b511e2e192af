package articles

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Repository abstracts storage for articles.
type Repository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryRepository is an in-memory Repository. Records are copied on the way
// in and out.
type MemoryRepository struct {
	mu        sync.RWMutex
	articles  map[uuid.UUID]*Article
	slugIndex map[string]uuid.UUID
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		articles:  make(map[uuid.UUID]*Article),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts record, replacing any article with the same id.
func (m *MemoryRepository) Create(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneArticle(record)
	if existing, ok := m.articles[copied.ID]; ok {
		delete(m.slugIndex, existing.Slug)
	}
	m.articles[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneArticle(copied), nil
}

// GetByID retrieves an article by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.articles[id]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: id.String()}
	}
	return cloneArticle(rec), nil
}

// GetBySlug retrieves an article by slug.
func (m *MemoryRepository) GetBySlug(_ context.Context, slug string) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: slug}
	}
	return cloneArticle(m.articles[id]), nil
}

// List returns every article, newest first. Ties break on slug.
func (m *MemoryRepository) List(_ context.Context) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Article, 0, len(m.articles))
	for _, rec := range m.articles {
		out = append(out, cloneArticle(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// Update replaces an existing article.
func (m *MemoryRepository) Update(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.articles[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: record.ID.String()}
	}
	delete(m.slugIndex, existing.Slug)

	copied := cloneArticle(record)
	m.articles[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneArticle(copied), nil
}

// Delete removes an article.
func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.articles[id]
	if !ok {
		return &NotFoundError{Resource: "article", Key: id.String()}
	}
	delete(m.slugIndex, existing.Slug)
	delete(m.articles, id)
	return nil
}
