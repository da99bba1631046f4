package prose

import "strings"

// WordsPerThousand returns count normalized to a rate per 1,000 words.
func WordsPerThousand(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 1000
}

// Percentage returns count as a percentage of total.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// LineNumber returns the 1-based line containing byte offset in text.
// Offsets past the end are clipped.
func LineNumber(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	return strings.Count(text[:offset], "\n") + 1
}

// RawOffset maps the match text[start:end] of normalized text to a byte
// offset in raw, the original file content.
//
// Normalization only removes markup, so the matched fragment is looked up in
// raw at or after start first, then anywhere. When the fragment does not
// survive verbatim (for example a match spanning stripped emphasis), start
// itself is returned, clipped to raw.
func RawOffset(text, raw string, start, end int) int {
	if text == raw {
		return start
	}
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start < end {
		frag := text[start:end]
		if start < len(raw) {
			if i := strings.Index(raw[start:], frag); i >= 0 {
				return start + i
			}
		}
		if i := strings.Index(raw, frag); i >= 0 {
			return i
		}
	}
	if start > len(raw) {
		return len(raw)
	}
	return start
}
