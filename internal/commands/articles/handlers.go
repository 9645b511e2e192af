package articlescmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-newshub/internal/articles"
	"github.com/goliatone/go-newshub/internal/commands"
	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

const (
	createOperation = "articles.create"
	updateOperation = "articles.update"
	deleteOperation = "articles.delete"
)

var (
	_ command.Commander[CreateArticleCommand] = (*CreateArticleHandler)(nil)
	_ command.Commander[UpdateArticleCommand] = (*UpdateArticleHandler)(nil)
	_ command.Commander[DeleteArticleCommand] = (*DeleteArticleHandler)(nil)
)

// CreateArticleHandler executes CreateArticleCommand.
type CreateArticleHandler struct {
	inner *commands.Handler[CreateArticleCommand]
}

// NewCreateArticleHandler binds the handler to service.
func NewCreateArticleHandler(service articles.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateArticleCommand]) *CreateArticleHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg CreateArticleCommand) error {
		created, err := service.Create(ctx, msg.Form)
		if err != nil {
			return err
		}
		logging.WithArticleContext(logger, created.ID.String(), created.Slug, "").
			Debug("articles.command.create.completed")
		if msg.OnSaved != nil {
			msg.OnSaved(created)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreateArticleCommand]{
		commands.WithLogger[CreateArticleCommand](logger),
		commands.WithOperation[CreateArticleCommand](createOperation),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &CreateArticleHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *CreateArticleHandler) Execute(ctx context.Context, msg CreateArticleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateArticleHandler executes UpdateArticleCommand.
type UpdateArticleHandler struct {
	inner *commands.Handler[UpdateArticleCommand]
}

// NewUpdateArticleHandler binds the handler to service.
func NewUpdateArticleHandler(service articles.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateArticleCommand]) *UpdateArticleHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg UpdateArticleCommand) error {
		updated, err := service.Update(ctx, msg.ID, msg.Form)
		if err != nil {
			return err
		}
		logging.WithArticleContext(logger, updated.ID.String(), updated.Slug, "").
			Debug("articles.command.update.completed")
		if msg.OnSaved != nil {
			msg.OnSaved(updated)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[UpdateArticleCommand]{
		commands.WithLogger[UpdateArticleCommand](logger),
		commands.WithOperation[UpdateArticleCommand](updateOperation),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &UpdateArticleHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *UpdateArticleHandler) Execute(ctx context.Context, msg UpdateArticleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteArticleHandler executes DeleteArticleCommand.
type DeleteArticleHandler struct {
	inner *commands.Handler[DeleteArticleCommand]
}

// NewDeleteArticleHandler binds the handler to service.
func NewDeleteArticleHandler(service articles.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteArticleCommand]) *DeleteArticleHandler {
	exec := func(ctx context.Context, msg DeleteArticleCommand) error {
		return service.Delete(ctx, msg.ID)
	}

	handlerOpts := []commands.HandlerOption[DeleteArticleCommand]{
		commands.WithLogger[DeleteArticleCommand](logger),
		commands.WithOperation[DeleteArticleCommand](deleteOperation),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &DeleteArticleHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *DeleteArticleHandler) Execute(ctx context.Context, msg DeleteArticleCommand) error {
	return h.inner.Execute(ctx, msg)
}
