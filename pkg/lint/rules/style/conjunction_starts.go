package style

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(ConjunctionStarts)
}

// ConjunctionStarts flags runs of sentences, or a high share of sentences,
// that open with a conjunction.
var ConjunctionStarts = lint.RuleDef{
	ID:          "conjunction-starts",
	Name:        "style.conjunction_starts",
	Group:       "style",
	Description: "Flag sentences that open with and/but/so, in runs or in bulk.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"conjunctions", "threshold_percent", "consecutive_threshold"},
	Check:       checkConjunctionStarts,
	Rationale:   "An occasional 'But' adds emphasis. Several in a row read like a chain of afterthoughts.",
	BadExample:  "And the build failed. But nobody noticed. So the release slipped.",
	GoodExample: "The build failed unnoticed, and the release slipped a week.",
	Fix:         "Merge the sentences or open them with their subject.",
}

var defaultConjunctions = []string{"and", "but", "so", "because", "however"}

// sentencePrefixLen is how much of a sentence is used to find it again in the text.
const sentencePrefixLen = 30

func checkConjunctionStarts(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	sentences := prose.SplitSentences(doc.Text)
	if len(sentences) == 0 {
		return nil, nil
	}

	conjunctions := make(map[string]bool)
	for _, c := range lint.GetStringSliceOption(opts, "conjunctions", defaultConjunctions) {
		conjunctions[c] = true
	}
	thresholdPercent := lint.GetFloatOption(opts, "threshold_percent", 20)
	consecutiveThreshold := lint.GetIntOption(opts, "consecutive_threshold", 3)

	starts := make([]bool, len(sentences))
	var starters []int
	run, longest := 0, 0
	for i, s := range sentences {
		if conjunctions[prose.FirstWord(s)] {
			starts[i] = true
			starters = append(starters, i)
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	percent := prose.Percentage(len(starters), len(sentences))

	if longest >= consecutiveThreshold {
		run = 0
		for i, s := range sentences {
			if !starts[i] {
				run = 0
				continue
			}
			run++
			if run < consecutiveThreshold {
				continue
			}
			sp, ok := locateSentence(doc.Text, s)
			if !ok {
				continue
			}
			msg := fmt.Sprintf("%d consecutive sentences start with conjunctions", longest)
			return []lint.Finding{
				lint.AtSpan(doc, core.SeverityFail, msg, sp).With("consecutive_count", longest),
			}, nil
		}
		return nil, nil
	}

	if percent > thresholdPercent && len(starters) > 0 {
		sp, ok := locateSentence(doc.Text, sentences[starters[0]])
		if !ok {
			return nil, nil
		}
		msg := fmt.Sprintf("%.1f%% of sentences start with conjunctions (threshold: %v%%)", percent, thresholdPercent)
		return []lint.Finding{
			lint.AtSpan(doc, core.SeverityWarn, msg, sp).
				With("percent", percent).
				With("count", len(starters)).
				With("total_sentences", len(sentences)),
		}, nil
	}
	return nil, nil
}

// locateSentence finds the start of sentence in text by its leading characters.
func locateSentence(text, sentence string) (prose.Span, bool) {
	sp, ok, err := prose.LocateFirst(text, regexp.QuoteMeta(prose.Prefix(sentence, sentencePrefixLen)))
	if err != nil {
		return prose.Span{}, false
	}
	return sp, ok
}
