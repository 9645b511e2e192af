package markdown

import (
	"html"
	"strings"

	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// Options configures a Renderer.
type Options struct {
	// EscapeHTML escapes the source before any rule runs. Off by default.
	EscapeHTML bool
	// Standard configures the goldmark engine used by ModeStandard.
	Standard interfaces.ParseOptions
	Logger   interfaces.Logger
}

// Renderer applies the mode rule tables. The zero value is not usable; call
// NewRenderer.
type Renderer struct {
	escape   bool
	standard *GoldmarkParser
	logger   interfaces.Logger
}

var _ interfaces.MarkdownRenderer = (*Renderer)(nil)

// NewRenderer constructs a renderer from opts.
func NewRenderer(opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Renderer{
		escape:   opts.EscapeHTML,
		standard: NewGoldmarkParser(opts.Standard),
		logger:   logger,
	}
}

var defaultRenderer = NewRenderer(Options{})

// Render converts text with the default renderer.
func Render(text string, mode Mode) string {
	return defaultRenderer.Render(text, mode)
}

// Render converts text to HTML. Unknown modes render as preview. Render
// never fails; a goldmark error in standard mode falls back to the article
// rules.
func (r *Renderer) Render(text string, mode Mode) string {
	if r.escape {
		text = html.EscapeString(text)
	}

	switch mode {
	case ModeArticle:
		return renderArticle(text)
	case ModeStandard:
		out, err := r.standard.Parse([]byte(text))
		if err != nil {
			r.logger.Warn("markdown.standard.fallback", "error", err)
			return renderArticle(text)
		}
		return string(out)
	case ModePreview:
	default:
		r.logger.Debug("markdown.mode.unknown", "mode", string(mode))
	}
	return applyRules(text, Rules(ModePreview))
}

func renderArticle(text string) string {
	var b strings.Builder
	b.WriteString(articleParagraphOpen)
	b.WriteString(applyRules(text, Rules(ModeArticle)))
	b.WriteString("</p>")
	return b.String()
}
