package editor

import (
	"errors"
	"fmt"
)

// ErrUnknownMarker reports a toolbar marker name missing from the table.
var ErrUnknownMarker = errors.New("editor: unknown marker")

// Marker names exposed by the toolbar.
const (
	MarkerHeading1     = "heading1"
	MarkerHeading2     = "heading2"
	MarkerHeading3     = "heading3"
	MarkerBold         = "bold"
	MarkerItalic       = "italic"
	MarkerUnderline    = "underline"
	MarkerBulletList   = "bullet_list"
	MarkerNumberedList = "numbered_list"
	MarkerLink         = "link"
	MarkerImage        = "image"
)

// Marker is a toolbar button definition.
type Marker struct {
	Name     string
	Template string
	Wrap     bool
}

var markerTable = []Marker{
	{Name: MarkerHeading1, Template: "# "},
	{Name: MarkerHeading2, Template: "## "},
	{Name: MarkerHeading3, Template: "### "},
	{Name: MarkerBold, Template: "**{}**", Wrap: true},
	{Name: MarkerItalic, Template: "*{}*", Wrap: true},
	{Name: MarkerUnderline, Template: "__{}__", Wrap: true},
	{Name: MarkerBulletList, Template: "- "},
	{Name: MarkerNumberedList, Template: "1. "},
	{Name: MarkerLink, Template: "[{}](url)", Wrap: true},
	{Name: MarkerImage, Template: "![alt text](image-url)"},
}

// Markers returns the toolbar table in display order.
func Markers() []Marker {
	return append([]Marker(nil), markerTable...)
}

// Lookup finds a marker by name.
func Lookup(name string) (Marker, bool) {
	for _, m := range markerTable {
		if m.Name == name {
			return m, true
		}
	}
	return Marker{}, false
}

// Result is the outcome of applying a toolbar marker.
type Result struct {
	Text   string
	Cursor int
}

// Apply resolves marker and inserts it at sel.
func Apply(text string, sel Selection, marker string) (Result, error) {
	m, ok := Lookup(marker)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMarker, marker)
	}
	out, cursor := Insert(text, sel, m.Template, m.Wrap)
	return Result{Text: out, Cursor: cursor}, nil
}
