package logging

import (
	"maps"

	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// WithFields attaches structured fields to a logger when the implementation
// supports interfaces.FieldsLogger. Loggers without the extension are
// returned unchanged.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(maps.Clone(fields))
	}

	return logger
}
