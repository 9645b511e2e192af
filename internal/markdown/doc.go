// Package markdown turns the editor's Markdown-flavoured text into HTML.
//
// The preview and article modes run a fixed, ordered table of regular
// expression substitutions (see Rules). They understand headings, bold,
// italic, underline, list items and line breaks and nothing else: links and
// images pass through untouched and no list container is emitted. Output is
// not HTML-escaped unless Options.EscapeHTML is set, so callers must only
// feed operator-authored text.
//
// The standard mode delegates to goldmark and is meant for exports.
package markdown
