package style

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(Transitions)
}

// Transitions flags a high density of transition words.
var Transitions = lint.RuleDef{
	ID:          "transitions",
	Name:        "style.transitions",
	Group:       "style",
	Description: "Limit the density of transition words such as 'moreover'.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"transitions", "threshold_per_1000"},
	Check:       checkTransitions,
	Rationale:   "Transitions announce connections instead of making them. Used densely they turn paragraphs into lists of signposts.",
	BadExample:  "Moreover, the API is fast. Furthermore, it is cheap. Additionally, it scales.",
	GoodExample: "The API is fast and cheap, and it scales to 10k requests per second.",
	Fix:         "Remove the transition and check whether the paragraph still reads in order.",
}

// Occurrences are counted as plain case-insensitive substrings, so "so" also
// counts inside "also". The anchor requires word boundaries.
func checkTransitions(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	words := prose.TokenizeWords(doc.Text)
	if len(words) == 0 {
		return nil, nil
	}

	transitions := lint.GetStringSliceOption(opts, "transitions", nil)
	lower := strings.ToLower(doc.Text)
	count := 0
	for _, t := range transitions {
		if t == "" {
			continue
		}
		count += strings.Count(lower, strings.ToLower(t))
	}

	rate := prose.WordsPerThousand(count, len(words))
	if rate <= lint.GetFloatOption(opts, "threshold_per_1000", 4) {
		return nil, nil
	}

	for _, t := range transitions {
		sp, ok := prose.LocateWord(doc.Text, t)
		if !ok {
			continue
		}
		msg := fmt.Sprintf("Overuse of transitions: %d occurrences (%.1f per 1,000 words)", count, rate)
		return []lint.Finding{
			lint.AtSpan(doc, core.SeverityWarn, msg, sp).With("count", count).With("rate", rate),
		}, nil
	}
	return nil, nil
}
