package domain

import "strings"

// Status represents the publication state of an article.
type Status string

const (
	// StatusDraft marks an article only visible in management views.
	StatusDraft Status = "draft"
	// StatusPublished marks an article listed on the home page.
	StatusPublished Status = "published"
)

// StatusAll is the filter sentinel matching every status.
const StatusAll = "all"

// ParseStatus normalizes input into a known status.
func ParseStatus(input string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(input))) {
	case StatusDraft:
		return StatusDraft, true
	case StatusPublished:
		return StatusPublished, true
	default:
		return "", false
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// TranslationKey returns the locale table key for the status label.
func (s Status) TranslationKey() string {
	return string(s)
}
