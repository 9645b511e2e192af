package editorcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-newshub/internal/commands"
	"github.com/goliatone/go-newshub/internal/editor"
	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

const insertOperation = "editor.insert_marker"

var _ command.Commander[InsertMarkerCommand] = (*InsertMarkerHandler)(nil)

// InsertMarkerHandler executes InsertMarkerCommand.
type InsertMarkerHandler struct {
	inner *commands.Handler[InsertMarkerCommand]
}

// NewInsertMarkerHandler builds the toolbar handler.
func NewInsertMarkerHandler(logger interfaces.Logger, opts ...commands.HandlerOption[InsertMarkerCommand]) *InsertMarkerHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(_ context.Context, msg InsertMarkerCommand) error {
		result, err := editor.Apply(msg.Text, editor.Selection{Start: msg.Start, End: msg.End}, msg.Marker)
		if err != nil {
			return err
		}
		logging.WithFields(logger, map[string]any{
			"marker": msg.Marker,
			"cursor": result.Cursor,
		}).Debug("editor.command.insert_marker.completed")
		if msg.OnResult != nil {
			msg.OnResult(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[InsertMarkerCommand]{
		commands.WithLogger[InsertMarkerCommand](logger),
		commands.WithOperation[InsertMarkerCommand](insertOperation),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &InsertMarkerHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *InsertMarkerHandler) Execute(ctx context.Context, msg InsertMarkerCommand) error {
	return h.inner.Execute(ctx, msg)
}
