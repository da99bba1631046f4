package prose

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations whose trailing period must not end a sentence.
var abbreviationRe = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr|vs|etc|e\.g|i\.e)\.`)

// periodMask stands in for an abbreviation period while splitting.
const periodMask = "\x00"

// SplitSentences splits text into sentences.
//
// A boundary is a whitespace run that directly follows '.', '!' or '?' and is
// followed by an ASCII capital letter or the end of the text. Periods of a
// fixed set of abbreviations (Mr., Dr., e.g., ...) are masked first so they
// never end a sentence. The list is not locale-aware; ambiguous cases can
// under- or over-split. Pieces are returned untrimmed; blank pieces are dropped.
func SplitSentences(text string) []string {
	masked := abbreviationRe.ReplaceAllStringFunc(text, func(m string) string {
		return m[:len(m)-1] + periodMask
	})

	var pieces []string
	start := 0
	i := 0
	for i < len(masked) {
		r, size := utf8.DecodeRuneInString(masked[i:])
		if !unicode.IsSpace(r) || i == 0 || !isTerminal(masked[i-1]) {
			i += size
			continue
		}

		// whitespace run directly after terminal punctuation
		j := i
		for j < len(masked) {
			r, size := utf8.DecodeRuneInString(masked[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}

		if j == len(masked) || isUpperASCII(masked[j]) {
			pieces = append(pieces, masked[start:i])
			start = j
		}
		i = j
	}
	pieces = append(pieces, masked[start:])

	sentences := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if strings.TrimSpace(p) == "" {
			continue
		}
		sentences = append(sentences, strings.ReplaceAll(p, periodMask, "."))
	}
	return sentences
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// FirstWord returns the first whitespace-separated word of s, lowercased and
// stripped of trailing sentence punctuation.
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(strings.ToLower(fields[0]), ".,!?;:")
}
