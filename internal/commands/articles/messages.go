package articlescmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-newshub/internal/articles"
)

const (
	createArticleMessageType = "newshub.articles.create"
	updateArticleMessageType = "newshub.articles.update"
	deleteArticleMessageType = "newshub.articles.delete"
)

// CreateArticleCommand stores a new article built from the editor form.
type CreateArticleCommand struct {
	Form articles.FormData `json:"form"`
	// OnSaved receives the stored article.
	OnSaved func(*articles.Article) `json:"-"`
}

// Type implements command.Message.
func (CreateArticleCommand) Type() string { return createArticleMessageType }

// Validate delegates to the form rules.
func (cmd CreateArticleCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Form),
	)
}

// UpdateArticleCommand replaces the editable fields of an article.
type UpdateArticleCommand struct {
	ID      uuid.UUID               `json:"id"`
	Form    articles.FormData       `json:"form"`
	OnSaved func(*articles.Article) `json:"-"`
}

// Type implements command.Message.
func (UpdateArticleCommand) Type() string { return updateArticleMessageType }

// Validate requires an id and a valid form.
func (cmd UpdateArticleCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ID, validation.By(requireID)),
		validation.Field(&cmd.Form),
	)
}

// DeleteArticleCommand removes an article.
type DeleteArticleCommand struct {
	ID uuid.UUID `json:"id"`
}

// Type implements command.Message.
func (DeleteArticleCommand) Type() string { return deleteArticleMessageType }

// Validate requires an id.
func (cmd DeleteArticleCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ID, validation.By(requireID)),
	)
}

func requireID(value any) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("newshub.articles.id_required", "article id is required")
	}
	return nil
}
