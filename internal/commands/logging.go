package commands

import (
	"strings"

	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// CommandLogger returns a logger scoped to a command module such as
// "articles" or "editor".
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, logging.CommandsModule+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
