package articles

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-newshub/internal/domain"
	"github.com/goliatone/go-newshub/internal/identity"
	"github.com/goliatone/go-newshub/internal/markdown"
)

//go:embed fixtures/*.md
var fixtureFS embed.FS

// LoadFixtures parses the embedded sample articles.
func LoadFixtures() ([]*Article, error) {
	return LoadFixturesFS(fixtureFS, "fixtures")
}

// LoadFixturesFS parses every .md file under dir. Files are read in name
// order.
func LoadFixturesFS(fsys fs.FS, dir string) ([]*Article, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("articles: read fixtures: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []*Article
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("articles: read fixture %s: %w", name, err)
		}
		article, err := ParseArticle(data)
		if err != nil {
			return nil, fmt.Errorf("articles: fixture %s: %w", name, err)
		}
		out = append(out, article)
	}
	return out, nil
}

// ParseArticle builds an article from Markdown with a YAML header. Missing
// slugs derive from the title and missing ids from the slug.
func ParseArticle(source []byte) (*Article, error) {
	fm, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	slugValue := strings.TrimSpace(fm.Slug)
	if slugValue == "" {
		slugValue, err = slug.Normalize(fm.Title)
		if err != nil || slugValue == "" {
			return nil, ErrSlugInvalid
		}
	}

	id, err := uuid.Parse(strings.TrimSpace(fm.ID))
	if err != nil {
		id = identity.ArticleUUID(slugValue)
	}

	status, ok := domain.ParseStatus(fm.Status)
	if !ok {
		status = domain.StatusDraft
	}

	author := strings.TrimSpace(fm.Author)
	if author == "" {
		author = DefaultAuthor
	}

	return &Article{
		ID:          id,
		Slug:        slugValue,
		Title:       fm.Title,
		Content:     strings.TrimSpace(string(body)),
		Summary:     fm.Summary,
		ImageURL:    fm.Image,
		Author:      author,
		PublishedAt: fm.Date.UTC(),
		UpdatedAt:   fm.Updated.UTC(),
		Status:      status,
		Tags:        fm.Tags,
		Category:    fm.Category,
	}, nil
}

// SeedFixtures inserts the embedded sample articles into repo.
func SeedFixtures(ctx context.Context, repo Repository) error {
	fixtures, err := LoadFixtures()
	if err != nil {
		return err
	}
	for _, article := range fixtures {
		if _, err := repo.Create(ctx, article); err != nil {
			return fmt.Errorf("articles: seed %s: %w", article.Slug, err)
		}
	}
	return nil
}
