package editorcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-newshub/internal/editor"
)

const insertMarkerMessageType = "newshub.editor.insert_marker"

// InsertMarkerCommand applies a toolbar marker to the editor text.
type InsertMarkerCommand struct {
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Marker string `json:"marker"`
	// OnResult receives the updated text and caret.
	OnResult func(editor.Result) `json:"-"`
}

// Type implements command.Message.
func (InsertMarkerCommand) Type() string { return insertMarkerMessageType }

// Validate requires a known marker. Offsets are clamped by the editor and
// need no validation.
func (cmd InsertMarkerCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Marker, validation.Required, validation.In(markerNames()...)),
	)
}

func markerNames() []any {
	markers := editor.Markers()
	out := make([]any, len(markers))
	for i, m := range markers {
		out[i] = m.Name
	}
	return out
}
