package articlescmd

import (
	"errors"

	"github.com/goliatone/go-newshub/internal/articles"
	"github.com/goliatone/go-newshub/internal/commands"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the article command handlers.
type HandlerSet struct {
	Create *CreateArticleHandler
	Update *UpdateArticleHandler
	Delete *DeleteArticleHandler
}

// RegisterArticleCommands builds the article handlers and registers them with
// reg when it is non-nil.
func RegisterArticleCommands(reg CommandRegistry, service articles.Service, provider interfaces.LoggerProvider) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("article command registration: service is nil")
	}

	logger := commands.CommandLogger(provider, "articles")
	set := &HandlerSet{
		Create: NewCreateArticleHandler(service, logger),
		Update: NewUpdateArticleHandler(service, logger),
		Delete: NewDeleteArticleHandler(service, logger),
	}

	if reg != nil {
		for _, handler := range []any{set.Create, set.Update, set.Delete} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
