package prose

import (
	"fmt"
	"regexp"
	"sync"
	"unicode"
	"unicode/utf8"
)

// patternCache holds compiled patterns keyed by source. Rule configurations
// are fixed for a run, so the set stays small.
var patternCache sync.Map // map[string]*regexp.Regexp

// Compile returns the case-insensitive compiled form of pattern, caching the result.
func Compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// MustCompile is like Compile but panics on error. For built-in patterns only.
func MustCompile(pattern string) *regexp.Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Span is a half-open byte range [Start, End) in a text.
type Span struct {
	Start int
	End   int
}

// Text returns the matched substring of s.
func (sp Span) Text(s string) string {
	return s[sp.Start:sp.End]
}

// LocateFirst returns the first match of the first pattern that matches text,
// trying patterns in order.
func LocateFirst(text string, patterns ...string) (Span, bool, error) {
	for _, p := range patterns {
		re, err := Compile(p)
		if err != nil {
			return Span{}, false, err
		}
		if loc := re.FindStringIndex(text); loc != nil {
			return Span{Start: loc[0], End: loc[1]}, true, nil
		}
	}
	return Span{}, false, nil
}

// LocateWord returns the first case-insensitive, word-bounded occurrence of word.
func LocateWord(text, word string) (Span, bool) {
	spans := findWords(text, word, 1)
	if len(spans) == 0 {
		return Span{}, false
	}
	return spans[0], true
}

// FindWords returns every non-overlapping, case-insensitive occurrence of word
// (or phrase) that sits on word boundaries. Letters and numbers of any script
// count as word characters, so "café" is bounded where RE2's ASCII \b is not.
func FindWords(text, word string) []Span {
	return findWords(text, word, -1)
}

func findWords(text, word string, limit int) []Span {
	if word == "" {
		return nil
	}
	re := MustCompile(regexp.QuoteMeta(word))
	var spans []Span
	for pos := 0; pos <= len(text) && limit != 0; {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if atBoundary(text, start) && atBoundary(text, end) {
			spans = append(spans, Span{Start: start, End: end})
			limit--
			pos = end
			continue
		}
		// retry one rune further on, so overlapping candidates are still seen
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + max(size, 1)
	}
	return spans
}

// atBoundary reports whether a word boundary falls at byte offset i: exactly
// one of the runes on either side is a word character.
func atBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// FindAll returns every non-overlapping match of pattern in text.
func FindAll(text, pattern string) ([]Span, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	locs := re.FindAllStringIndex(text, -1)
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans, nil
}
