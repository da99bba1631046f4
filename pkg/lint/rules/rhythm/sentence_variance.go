package rhythm

import (
	"fmt"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(SentenceVariance)
}

// SentenceVariance flags documents whose sentences cluster in one length band.
var SentenceVariance = lint.RuleDef{
	ID:          "sentence-variance",
	Name:        "rhythm.sentence_variance",
	Group:       "rhythm",
	Description: "Flag documents where most sentences have about the same length.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"threshold_percent"},
	Check:       checkSentenceVariance,
	Rationale:   "Human prose mixes short and long sentences. Uniform lengths produce a monotone rhythm typical of generated text.",
	Fix:         "Split a long sentence, or join two short ones.",
}

const (
	minSentences  = 5
	bandWidth     = 10
	snippetLength = 60
)

func checkSentenceVariance(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	sentences := prose.SplitSentences(doc.Text)
	if len(sentences) < minSentences {
		return nil, nil
	}

	lengths := make([]int, len(sentences))
	total := 0
	for i, s := range sentences {
		lengths[i] = len(prose.TokenizeWords(s))
		total += lengths[i]
	}

	lo, hi := lengths[0], lengths[0]
	for _, n := range lengths[1:] {
		lo = min(lo, n)
		hi = max(hi, n)
	}

	bestStart, bestCount := 0, 0
	for start := lo; start < hi; start++ {
		count := 0
		for _, n := range lengths {
			if n >= start && n < start+bandWidth {
				count++
			}
		}
		if count > bestCount {
			bestStart, bestCount = start, count
		}
	}

	percent := prose.Percentage(bestCount, len(sentences))
	if percent < lint.GetFloatOption(opts, "threshold_percent", 70) {
		return nil, nil
	}

	line := 1
	f := lint.Finding{
		Severity: core.SeverityWarn,
		Message: fmt.Sprintf("Low sentence length variance: %.1f%% of sentences are %d-%d words",
			percent, bestStart, bestStart+bandWidth),
		Snippet: prose.Truncate(sentences[0], snippetLength),
		Line:    &line,
		Details: map[string]any{
			"percent_in_band": percent,
			"band_range":      []int{bestStart, bestStart + bandWidth},
			"sentence_count":  len(sentences),
			"avg_length":      float64(total) / float64(len(sentences)),
		},
	}
	return []lint.Finding{f}, nil
}
