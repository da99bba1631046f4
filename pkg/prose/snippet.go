package prose

import (
	"strings"
	"unicode/utf8"
)

// DefaultRadius is the number of characters of context kept on each side of a match.
const DefaultRadius = 40

const ellipsis = "..."

// ContextSnippet returns text[start:end] with up to radius characters of
// context on each side. An ellipsis marks each clipped side and all runs of
// whitespace collapse to single spaces. Offsets are byte offsets; the radius
// counts characters.
func ContextSnippet(text string, start, end, radius int) string {
	start = clamp(start, 0, len(text))
	end = clamp(end, start, len(text))

	from := start
	for n := 0; n < radius && from > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	to := end
	for n := 0; n < radius && to < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}

	snippet := text[from:to]
	if from > 0 {
		snippet = ellipsis + snippet
	}
	if to < len(text) {
		snippet += ellipsis
	}
	return strings.Join(strings.Fields(snippet), " ")
}

// Prefix returns the first n characters of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Truncate returns s clipped to n characters, with an ellipsis appended when clipped.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return Prefix(s, n) + ellipsis
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
