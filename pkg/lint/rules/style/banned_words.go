package style

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(BannedWords)
}

// BannedWords flags filler words used above a per-1,000-word rate.
var BannedWords = lint.RuleDef{
	ID:          "banned-words",
	Name:        "style.banned_words",
	Group:       "style",
	Description: "Limit how often listed filler words appear.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"banned_words", "fail_threshold_per_1000", "warn_threshold_per_1000"},
	Check:       checkBannedWords,
	Rationale:   "Words like 'very' and 'really' add length without meaning. A few are harmless; a steady stream makes prose read as padded.",
	BadExample:  "It was a very, very good release and really very fast.",
	GoodExample: "The release cut build time from 40 to 12 seconds.",
	Fix:         "Delete the word or replace it with a concrete detail.",
}

func checkBannedWords(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	words := prose.TokenizeWords(doc.Text)
	if len(words) == 0 {
		return nil, nil
	}

	banned := lint.GetStringSliceOption(opts, "banned_words", nil)
	failAt := lint.GetFloatOption(opts, "fail_threshold_per_1000", 3)
	warnAt := lint.GetFloatOption(opts, "warn_threshold_per_1000", 2)

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	var findings []lint.Finding
	for _, word := range banned {
		count := counts[strings.ToLower(word)]
		rate := prose.WordsPerThousand(count, len(words))

		var sev core.Severity
		switch {
		case rate > failAt:
			sev = core.SeverityFail
		case rate > warnAt:
			sev = core.SeverityWarn
		default:
			continue
		}

		sp, ok := prose.LocateWord(doc.Text, word)
		if !ok {
			continue
		}
		msg := fmt.Sprintf("Overuse of '%s': %d occurrences (%.1f per 1,000 words)", word, count, rate)
		findings = append(findings, lint.AtSpan(doc, sev, msg, sp).
			With("word", word).
			With("count", count).
			With("rate", rate))
	}
	return findings, nil
}
