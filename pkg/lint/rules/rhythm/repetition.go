package rhythm

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(Repetition)
}

// Repetition flags content words repeated many times within a window of a paragraph.
var Repetition = lint.RuleDef{
	ID:          "repetition",
	Name:        "rhythm.repetition",
	Group:       "rhythm",
	Description: "Flag content words repeated often within a paragraph.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"threshold_count", "window_words"},
	Check:       checkRepetition,
	Rationale:   "Repeating the same content word in a short stretch makes prose feel circular.",
	Fix:         "Use a pronoun, a synonym, or cut the sentences that restate the point.",
}

// errWindowTooSmall is returned when window_words cannot produce a positive stride.
var errWindowTooSmall = errors.New("window_words must be at least 2")

const (
	minRepeatedLen  = 5 // tokens shorter than this are ignored
	paraPrefixRunes = 50
)

func checkRepetition(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	threshold := lint.GetIntOption(opts, "threshold_count", 4)
	window := lint.GetIntOption(opts, "window_words", 150)
	stride := window / 2
	if stride <= 0 {
		return nil, errWindowTooSmall
	}

	var findings []lint.Finding
	for _, para := range strings.Split(doc.Text, "\n\n") {
		words := prose.TokenizeWords(para)

		for i := 0; i < len(words); i += stride {
			end := min(i+window, len(words))
			for _, wc := range countContentWords(words[i:end]) {
				if wc.count <= threshold {
					continue
				}
				f, ok := repetitionFinding(doc, para, wc.word, wc.count, window)
				if ok {
					findings = append(findings, f)
				}
			}
		}
	}
	return findings, nil
}

type wordCount struct {
	word  string
	count int
}

// countContentWords counts non-stopwords of at least minRepeatedLen characters, in
// first-seen order.
func countContentWords(window []string) []wordCount {
	index := make(map[string]int)
	var out []wordCount
	for _, w := range window {
		if utf8.RuneCountInString(w) < minRepeatedLen || prose.IsStopword(w) {
			continue
		}
		i, ok := index[w]
		if !ok {
			i = len(out)
			index[w] = i
			out = append(out, wordCount{word: w})
		}
		out[i].count++
	}
	return out
}

// repetitionFinding anchors the snippet inside the paragraph and the line at
// the paragraph's position in the document, found by its leading characters.
func repetitionFinding(doc *core.Document, para, word string, count, window int) (lint.Finding, bool) {
	sp, ok := prose.LocateWord(para, word)
	if !ok {
		return lint.Finding{}, false
	}

	prefix := prose.Prefix(para, paraPrefixRunes)
	paraStart := strings.Index(doc.Text, prefix)
	if paraStart < 0 {
		paraStart = 0
	}
	offset := prose.RawOffset(doc.Text, doc.Raw, paraStart, paraStart+len(prefix))
	line := prose.LineNumber(doc.Raw, offset)

	f := lint.Finding{
		Severity: core.SeverityWarn,
		Message:  fmt.Sprintf("Word '%s' repeated %d times in %d-word window", word, count, window),
		Snippet:  prose.ContextSnippet(para, sp.Start, sp.End, prose.DefaultRadius),
		Line:     &line,
		Details: map[string]any{
			"word":        word,
			"count":       count,
			"window_size": window,
		},
	}
	return f, true
}
