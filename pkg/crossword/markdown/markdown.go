// Package markdown renders the inline emphasis markup allowed in clue text.
//
// Supported spans are *italic*, **bold** and ***bold italic***, plus the
// underscore equivalents. Anything else passes through unchanged.
package markdown

import "strings"

// rule substitutes one marker with a tag pair.
type rule struct {
	marker string
	open   string
	close  string
}

// rules are ordered longest marker first so that a shorter marker never
// consumes part of a longer one.
var rules = []rule{
	{marker: "***", open: "<strong><em>", close: "</em></strong>"},
	{marker: "___", open: "<strong><em>", close: "</em></strong>"},
	{marker: "**", open: "<strong>", close: "</strong>"},
	{marker: "__", open: "<strong>", close: "</strong>"},
	{marker: "*", open: "<em>", close: "</em>"},
	{marker: "_", open: "<em>", close: "</em>"},
}

// Render returns text with every well-formed emphasis span replaced by the
// corresponding tag pair. Each rule runs over the output of the previous
// one, which is what lets bold text contain italics. Unmatched markers are
// left verbatim.
func Render(text string) string {
	for _, r := range rules {
		text = r.apply(text)
	}
	return text
}

// apply substitutes every span of r in s, scanning left to right. A span is
// an opening marker, at least one character of content, and the next
// occurrence of the marker.
func (r rule) apply(s string) string {
	if !strings.Contains(s, r.marker) {
		return s
	}

	var sb strings.Builder
	m := len(r.marker)
	for {
		start := strings.Index(s, r.marker)
		if start < 0 || start+m >= len(s) {
			break
		}
		end := strings.Index(s[start+m+1:], r.marker)
		if end < 0 {
			break
		}
		end += start + m + 1

		sb.WriteString(s[:start])
		sb.WriteString(r.open)
		sb.WriteString(s[start+m : end])
		sb.WriteString(r.close)
		s = s[end+m:]
	}
	sb.WriteString(s)
	return sb.String()
}
