package articles

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-newshub/internal/domain"
)

// DefaultCategories lists the editor's category choices in display order.
var DefaultCategories = []string{"Technology", "Business", "Marketing", "Science", "Health", "Sports"}

// DefaultAuthor is recorded when a form omits the author.
const DefaultAuthor = "Anonymous"

// CategoryAll matches every category in a Query.
const CategoryAll = "all"

// Article is a blog-style post.
type Article struct {
	ID          uuid.UUID     `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Summary     string        `json:"summary"`
	ImageURL    string        `json:"image_url,omitempty"`
	Author      string        `json:"author"`
	PublishedAt time.Time     `json:"published_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Status      domain.Status `json:"status"`
	Tags        []string      `json:"tags"`
	Category    string        `json:"category"`
}

// IsPublished reports whether the article appears on the home page.
func (a *Article) IsPublished() bool {
	return a != nil && a.Status == domain.StatusPublished
}

// FormData returns the editable projection of the article.
func (a *Article) FormData() FormData {
	if a == nil {
		return NewFormData()
	}
	return FormData{
		Title:    a.Title,
		Content:  a.Content,
		Summary:  a.Summary,
		ImageURL: a.ImageURL,
		Author:   a.Author,
		Category: a.Category,
		Tags:     slices.Clone(a.Tags),
		Status:   a.Status,
	}
}

func cloneArticle(src *Article) *Article {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Tags = slices.Clone(src.Tags)
	return &copied
}

// FormData is the editor's working copy of an article.
type FormData struct {
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Summary  string        `json:"summary"`
	ImageURL string        `json:"image_url,omitempty"`
	Author   string        `json:"author,omitempty"`
	Category string        `json:"category"`
	Tags     []string      `json:"tags"`
	Status   domain.Status `json:"status"`
}

// NewFormData returns the blank editor state: first category, draft status.
func NewFormData() FormData {
	return FormData{
		Category: DefaultCategories[0],
		Tags:     []string{},
		Status:   domain.StatusDraft,
	}
}

// AddTag appends tag after trimming it. Empty and duplicate tags are ignored;
// the return value reports whether the tag was added.
func (f *FormData) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(f.Tags, tag) {
		return false
	}
	f.Tags = append(f.Tags, tag)
	return true
}

// RemoveTag drops every occurrence of tag.
func (f *FormData) RemoveTag(tag string) {
	f.Tags = slices.DeleteFunc(f.Tags, func(existing string) bool {
		return existing == tag
	})
}

// Stats summarises the management table.
type Stats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
}
