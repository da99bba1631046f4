package style

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(WeakPhrases)
}

// WeakPhrases flags hedging phrases. A hedge inside a sentence that also makes
// a claim is graded FAIL.
var WeakPhrases = lint.RuleDef{
	ID:          "weak-phrases",
	Name:        "style.weak_phrases",
	Group:       "style",
	Description: "Flag hedging phrases, especially next to a claim.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"phrases"},
	Check:       checkWeakPhrases,
	Rationale:   "Hedges undercut the sentence they sit in. Hedging a factual claim leaves the reader unsure whether the author stands behind it.",
	BadExample:  "I think this change is the cause of the regression.",
	GoodExample: "This change caused the regression: reverting it restores p99 latency.",
	Fix:         "Drop the hedge and support the claim, or state the uncertainty explicitly.",
}

// claimVerbs mark a sentence as asserting something. Matched as substrings.
var claimVerbs = []string{"is", "are", "causes", "leads to", "results in", "means", "shows", "proves"}

func checkWeakPhrases(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	text := doc.Text
	var findings []lint.Finding

	for _, phrase := range lint.GetStringSliceOption(opts, "phrases", nil) {
		for _, sp := range prose.FindWords(text, phrase) {
			assertive := isAssertive(enclosingSentence(text, sp))
			sev := core.SeverityWarn
			if assertive {
				sev = core.SeverityFail
			}
			matched := sp.Text(text)
			findings = append(findings, lint.AtSpan(doc, sev, fmt.Sprintf("Weak phrase: '%s'", matched), sp).
				With("phrase", matched).
				With("assertive_context", assertive))
		}
	}
	return findings, nil
}

// enclosingSentence returns the lowercased text between the nearest periods
// around sp.
func enclosingSentence(text string, sp prose.Span) string {
	start := strings.LastIndexByte(text[:sp.Start], '.') + 1
	end := len(text)
	if i := strings.IndexByte(text[sp.End:], '.'); i >= 0 {
		end = sp.End + i
	}
	return strings.ToLower(text[start:end])
}

func isAssertive(sentence string) bool {
	for _, v := range claimVerbs {
		if strings.Contains(sentence, v) {
			return true
		}
	}
	return false
}
