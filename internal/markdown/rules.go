package markdown

import (
	"regexp"

	"github.com/goliatone/go-newshub/pkg/interfaces"
)

// Mode selects which rules apply.
type Mode = interfaces.RenderMode

const (
	ModePreview  = interfaces.RenderModePreview
	ModeArticle  = interfaces.RenderModeArticle
	ModeStandard = interfaces.RenderModeStandard
)

// Rule names, in evaluation order.
const (
	RuleHeading1      = "heading1"
	RuleHeading2      = "heading2"
	RuleHeading3      = "heading3"
	RuleBold          = "bold"
	RuleItalic        = "italic"
	RuleUnderline     = "underline"
	RuleUnorderedItem = "unordered_item"
	RuleOrderedItem   = "ordered_item"
	RuleParagraph     = "paragraph"
	RuleLineBreak     = "line_break"
)

// articleParagraphOpen is the paragraph container used by article mode.
const articleParagraphOpen = `<p class="mb-4">`

// Rule is a single whole-string substitution. Replace uses regexp template
// syntax.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

type ruleDef struct {
	name    string
	pattern *regexp.Regexp
	// an empty replacement disables the rule for that mode
	preview string
	article string
}

// ruleTable is evaluated top to bottom; each rule sees the output of the
// previous one. Bold must precede italic or "**x**" turns into two empty
// italic spans around "x".
var ruleTable = []ruleDef{
	{
		name:    RuleHeading1,
		pattern: regexp.MustCompile(`(?m)^# (.*)$`),
		preview: `<h1>${1}</h1>`,
		article: `<h1 class="mt-8 mb-6 font-semibold text-3xl">${1}</h1>`,
	},
	{
		name:    RuleHeading2,
		pattern: regexp.MustCompile(`(?m)^## (.*)$`),
		preview: `<h2>${1}</h2>`,
		article: `<h2 class="mt-6 mb-4 font-semibold text-2xl">${1}</h2>`,
	},
	{
		name:    RuleHeading3,
		pattern: regexp.MustCompile(`(?m)^### (.*)$`),
		preview: `<h3>${1}</h3>`,
		article: `<h3 class="mt-5 mb-3 font-semibold text-xl">${1}</h3>`,
	},
	{
		name:    RuleBold,
		pattern: regexp.MustCompile(`\*\*(.*?)\*\*`),
		preview: `<strong>${1}</strong>`,
		article: `<strong class="font-semibold">${1}</strong>`,
	},
	{
		name:    RuleItalic,
		pattern: regexp.MustCompile(`\*(.*?)\*`),
		preview: `<em>${1}</em>`,
		article: `<em class="italic">${1}</em>`,
	},
	{
		name:    RuleUnderline,
		pattern: regexp.MustCompile(`__(.*?)__`),
		preview: `<u>${1}</u>`,
		article: `<u class="underline">${1}</u>`,
	},
	{
		name:    RuleUnorderedItem,
		pattern: regexp.MustCompile(`(?m)^- (.*)$`),
		preview: `<li>${1}</li>`,
		article: `<li class="mb-2">${1}</li>`,
	},
	{
		name:    RuleOrderedItem,
		pattern: regexp.MustCompile(`(?m)^1\. (.*)$`),
		preview: `<li>${1}</li>`,
		article: `<li class="mb-2">${1}</li>`,
	},
	{
		name:    RuleParagraph,
		pattern: regexp.MustCompile(`\n\n`),
		article: `</p>` + articleParagraphOpen,
	},
	{
		name:    RuleLineBreak,
		pattern: regexp.MustCompile(`\n`),
		preview: `<br>`,
		article: `<br>`,
	},
}

// Rules returns the ordered rule list applied in mode. Standard mode is not
// rule based and yields nil.
func Rules(mode Mode) []Rule {
	out := make([]Rule, 0, len(ruleTable))
	for _, def := range ruleTable {
		replace := def.replacement(mode)
		if replace == "" {
			continue
		}
		out = append(out, Rule{Name: def.name, Pattern: def.pattern, Replace: replace})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (d ruleDef) replacement(mode Mode) string {
	switch mode {
	case ModePreview:
		return d.preview
	case ModeArticle:
		return d.article
	default:
		return ""
	}
}

func applyRules(text string, rules []Rule) string {
	for _, rule := range rules {
		text = rule.Pattern.ReplaceAllString(text, rule.Replace)
	}
	return text
}
