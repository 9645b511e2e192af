package interfaces

// RenderMode selects the rule set applied by a MarkdownRenderer.
type RenderMode string

const (
	// RenderModePreview is the editor's live preview: inline markers, headings,
	// list items and line breaks.
	RenderModePreview RenderMode = "preview"
	// RenderModeArticle is the published article body: the preview rules plus
	// paragraph wrapping.
	RenderModeArticle RenderMode = "article"
	// RenderModeStandard renders CommonMark/GFM through goldmark. It is used
	// for exports and is not part of the editor workflow.
	RenderModeStandard RenderMode = "standard"
)

// MarkdownRenderer converts Markdown-flavoured text into an HTML fragment.
// Render never fails; any input yields some output.
type MarkdownRenderer interface {
	Render(text string, mode RenderMode) string
}

// ParseOptions customises the goldmark-backed standard renderer.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}
