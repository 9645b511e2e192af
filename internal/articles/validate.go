package articles

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-newshub/internal/domain"
)

// Validate checks the fields the editor requires before saving. The
// returned error wraps ErrInvalidArticle and a validation.Errors keyed by
// field name.
func (f FormData) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.By(requireText(ErrTitleRequired))),
		validation.Field(&f.Content, validation.By(requireText(ErrContentRequired))),
		validation.Field(&f.Category, validation.Required),
		validation.Field(&f.ImageURL, validation.By(validImageURL)),
		validation.Field(&f.Status, validation.By(func(value any) error {
			status, _ := value.(domain.Status)
			if status == "" || status.Valid() {
				return nil
			}
			return validation.NewError("newshub.articles.status_invalid", ErrStatusInvalid.Error())
		})),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, err)
	}
	return nil
}

func requireText(sentinel error) validation.RuleFunc {
	return func(value any) error {
		text, _ := value.(string)
		if strings.TrimSpace(text) == "" {
			return validation.NewError("newshub.articles.required", sentinel.Error())
		}
		return nil
	}
}

// validImageURL accepts empty values and absolute http(s) URLs.
func validImageURL(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return validation.NewError("newshub.articles.image_url_invalid", "image url must be an absolute http(s) url")
	}
	return nil
}
