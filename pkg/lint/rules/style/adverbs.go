package style

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(Adverbs)
}

// Adverbs flags a high density of -ly adverbs.
var Adverbs = lint.RuleDef{
	ID:          "adverbs",
	Name:        "style.adverbs",
	Group:       "style",
	Description: "Limit the density of -ly adverbs.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"warn_threshold_per_1000", "fail_threshold_per_1000"},
	Check:       checkAdverbs,
	Rationale:   "Adverbs often prop up a weak verb. Dense adverbs make prose feel breathless and vague.",
	BadExample:  "She quickly and carefully reviewed the extremely lengthy report.",
	GoodExample: "She skimmed the 80-page report in an hour.",
	Fix:         "Choose a stronger verb or give the measurement the adverb stands in for.",
}

// Words ending in "ly" that are not adverbs.
var lyExceptions = map[string]bool{
	"fly": true, "supply": true, "apply": true, "reply": true, "multiply": true,
	"early": true, "only": true, "daily": true, "family": true, "july": true,
	"likely": true,
}

func lyWords(words []string) []string {
	var out []string
	for _, w := range words {
		if strings.HasSuffix(w, "ly") && !lyExceptions[w] && len(w) > 3 {
			out = append(out, w)
		}
	}
	return out
}

func checkAdverbs(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	words := prose.TokenizeWords(doc.Text)
	if len(words) == 0 {
		return nil, nil
	}

	ly := lyWords(words)
	rate := prose.WordsPerThousand(len(ly), len(words))

	var sev core.Severity
	switch {
	case rate > lint.GetFloatOption(opts, "fail_threshold_per_1000", 15):
		sev = core.SeverityFail
	case rate > lint.GetFloatOption(opts, "warn_threshold_per_1000", 8):
		sev = core.SeverityWarn
	default:
		return nil, nil
	}
	if len(ly) == 0 {
		return nil, nil
	}

	sp, ok := prose.LocateWord(doc.Text, ly[0])
	if !ok {
		return nil, nil
	}
	msg := fmt.Sprintf("Overuse of -ly adverbs: %d occurrences (%.1f per 1,000 words)", len(ly), rate)
	return []lint.Finding{
		lint.AtSpan(doc, sev, msg, sp).With("count", len(ly)).With("rate", rate),
	}, nil
}
