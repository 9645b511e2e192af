package articles

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/goliatone/go-newshub/internal/domain"
)

// SearchField names an article attribute a Query searches.
type SearchField string

const (
	FieldTitle    SearchField = "title"
	FieldSummary  SearchField = "summary"
	FieldAuthor   SearchField = "author"
	FieldCategory SearchField = "category"
	FieldTags     SearchField = "tags"
)

// Query filters a listing. Zero values match everything.
type Query struct {
	// Search is matched case-insensitively against Fields.
	Search string
	// Fields defaults to title and summary.
	Fields []SearchField
	// Category matches exactly; empty or "all" matches any.
	Category string
	// Status is draft, published, or empty/"all" for any.
	Status string
	// Fuzzy ranks results by fuzzy match score instead of substring
	// matching.
	Fuzzy bool
}

// HomeQuery is the public listing: published articles searched by title
// and summary.
func HomeQuery(search, category string) Query {
	return Query{
		Search:   search,
		Fields:   []SearchField{FieldTitle, FieldSummary},
		Category: category,
		Status:   string(domain.StatusPublished),
	}
}

// ManagementQuery is the management table: every status, searched by
// title, author and category.
func ManagementQuery(search string) Query {
	return Query{
		Search: search,
		Fields: []SearchField{FieldTitle, FieldAuthor, FieldCategory},
		Status: domain.StatusAll,
	}
}

func (q Query) fields() []SearchField {
	if len(q.Fields) == 0 {
		return []SearchField{FieldTitle, FieldSummary}
	}
	return q.Fields
}

func (q Query) matchesFilters(a *Article) bool {
	category := strings.TrimSpace(q.Category)
	if category != "" && !strings.EqualFold(category, CategoryAll) && !strings.EqualFold(category, a.Category) {
		return false
	}
	status := strings.TrimSpace(q.Status)
	if status != "" && !strings.EqualFold(status, domain.StatusAll) && !strings.EqualFold(status, string(a.Status)) {
		return false
	}
	return true
}

func (q Query) haystack(a *Article) []string {
	fields := q.fields()
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		switch field {
		case FieldTitle:
			out = append(out, a.Title)
		case FieldSummary:
			out = append(out, a.Summary)
		case FieldAuthor:
			out = append(out, a.Author)
		case FieldCategory:
			out = append(out, a.Category)
		case FieldTags:
			out = append(out, a.Tags...)
		}
	}
	return out
}

// apply filters records, preserving order unless fuzzy ranking is on.
func (q Query) apply(records []*Article) []*Article {
	filtered := make([]*Article, 0, len(records))
	for _, rec := range records {
		if q.matchesFilters(rec) {
			filtered = append(filtered, rec)
		}
	}

	search := strings.TrimSpace(q.Search)
	if search == "" {
		return filtered
	}
	if q.Fuzzy {
		return q.rank(search, filtered)
	}

	needle := strings.ToLower(search)
	out := filtered[:0]
	for _, rec := range filtered {
		for _, value := range q.haystack(rec) {
			if strings.Contains(strings.ToLower(value), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// rank orders records by their best fuzzy score across the searched fields.
func (q Query) rank(search string, records []*Article) []*Article {
	candidates := make([]string, len(records))
	for i, rec := range records {
		candidates[i] = strings.Join(q.haystack(rec), " ")
	}
	matches := fuzzy.Find(search, candidates)
	out := make([]*Article, 0, len(matches))
	for _, match := range matches {
		out = append(out, records[match.Index])
	}
	return out
}
