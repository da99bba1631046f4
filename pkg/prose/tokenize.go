package prose

import (
	"strings"
	"unicode"
)

// TokenizeWords splits text into lowercase word tokens.
//
// Punctuation and underscores become separators; apostrophes survive inside
// words ("don't") but are trimmed from token edges. Letters and numbers are
// recognized in any script; combining marks are separators, so decomposed
// "cafe\u0301" yields "cafe".
func TokenizeWords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\'':
			return r
		case r == '_':
			return ' '
		case unicode.IsLetter(r), unicode.IsNumber(r):
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, text)

	fields := strings.Fields(strings.ToLower(cleaned))
	words := fields[:0]
	for _, f := range fields {
		if w := strings.Trim(f, "'"); w != "" {
			words = append(words, w)
		}
	}
	return words
}

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a an and are as at be by for from
		has he in is it its of on that the
		to was will with your you we they their
		this these those or but not can have had
		do does did would could should may might
		must been being than then there here where
		when who which what how why all each every
		both few more most other some such only own
		same so no nor just too very any also`) {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether w (lowercase) is a common English function word.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

// Stopwords returns a copy of the stopword set.
func Stopwords() map[string]struct{} {
	out := make(map[string]struct{}, len(stopwords))
	for w := range stopwords {
		out[w] = struct{}{}
	}
	return out
}
