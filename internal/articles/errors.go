package articles

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArticle    = errors.New("articles: invalid article")
	ErrTitleRequired     = errors.New("articles: title is required")
	ErrContentRequired   = errors.New("articles: content is required")
	ErrStatusInvalid     = errors.New("articles: status must be draft or published")
	ErrCategoryUnknown   = errors.New("articles: unknown category")
	ErrSlugInvalid       = errors.New("articles: slug could not be derived from title")
	ErrArticleIDRequired = errors.New("articles: article id required")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
