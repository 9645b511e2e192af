package editor

import "strings"

// Placeholder marks where a wrapping template receives the selected text.
const Placeholder = "{}"

// Selection is a half-open range of rune offsets into the editor text.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection is a bare caret.
func (s Selection) Empty() bool {
	return s.Start >= s.End
}

// normalize clamps both offsets into [0, size] and swaps inverted bounds.
func (s Selection) normalize(size int) Selection {
	start := clamp(s.Start, 0, size)
	end := clamp(s.End, 0, size)
	if start > end {
		start, end = end, start
	}
	return Selection{Start: start, End: end}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Insert places template into text at sel and returns the new text and the
// caret offset immediately after the inserted template.
//
// When wrap is set, the selection is non-empty and template contains the
// placeholder, the first placeholder is replaced by the selected text and the
// expansion replaces the selection. Otherwise the template is inserted
// verbatim at sel.Start and any selected text follows it unchanged.
//
// Offsets are in runes. Out-of-range offsets are clamped to the text and an
// inverted selection is swapped, so Insert never fails.
func Insert(text string, sel Selection, template string, wrap bool) (string, int) {
	runes := []rune(text)
	sel = sel.normalize(len(runes))

	before := string(runes[:sel.Start])
	selected := string(runes[sel.Start:sel.End])
	after := string(runes[sel.End:])

	if wrap && !sel.Empty() && strings.Contains(template, Placeholder) {
		expanded := strings.Replace(template, Placeholder, selected, 1)
		return before + expanded + after, sel.Start + runeLen(expanded)
	}

	return before + template + selected + after, sel.Start + runeLen(template)
}

func runeLen(s string) int {
	return len([]rune(s))
}
