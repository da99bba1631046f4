package aitells

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(AIVocabulary)
}

// AIVocabulary flags dense or clustered use of words typical of generated prose.
var AIVocabulary = lint.RuleDef{
	ID:          "ai-vocabulary",
	Name:        "aitells.ai_vocabulary",
	Group:       "ai-tells",
	Description: "Flag dense or clustered use of words typical of generated prose.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"ai_words", "fail_threshold_per_1000", "warn_threshold_per_1000", "cluster_threshold"},
	Check:       checkAIVocabulary,
	Rationale:   "Words such as 'delve' and 'tapestry' became far more frequent once language models were widely used. Several of them together are a strong signal.",
	BadExample:  "This pivotal study delves into the intricate tapestry of urban life.",
	GoodExample: "This study follows 40 families in Leeds for two years.",
	Fix:         "Replace each word with the plain term, or with the specific fact it gestures at.",
}

// DefaultAIWords is used when ai_words is not configured.
var DefaultAIWords = []string{
	"additionally", "align", "aligned", "aligns", "crucial", "delve", "delved", "delves", "delving",
	"emphasizing", "emphasize", "emphasized", "enduring", "enhance", "enhanced", "enhances",
	"enhancing", "fostering", "foster", "fostered", "garner", "garnered", "garnering",
	"highlight", "highlighted", "highlighting", "highlights", "interplay", "intricate",
	"intricacies", "landscape", "pivotal", "showcase", "showcased", "showcases", "showcasing",
	"tapestry", "testament", "underscore", "underscored", "underscores", "underscoring",
	"valuable", "vibrant",
}

const (
	maxListedWords = 5
	maxDetailWords = 10
)

func checkAIVocabulary(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	words := prose.TokenizeWords(doc.Text)
	if len(words) == 0 {
		return nil, nil
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	total := 0
	var detected [][]any // [word, count] pairs
	for _, w := range lint.GetStringSliceOption(opts, "ai_words", DefaultAIWords) {
		if c := counts[strings.ToLower(w)]; c > 0 {
			total += c
			detected = append(detected, []any{w, c})
		}
	}

	rate := prose.WordsPerThousand(total, len(words))
	var sev core.Severity
	switch {
	case rate > lint.GetFloatOption(opts, "fail_threshold_per_1000", 5):
		sev = core.SeverityFail
	case rate > lint.GetFloatOption(opts, "warn_threshold_per_1000", 3):
		sev = core.SeverityWarn
	case len(detected) >= lint.GetIntOption(opts, "cluster_threshold", 3) && len(detected) > 0:
		sev = core.SeverityWarn
	default:
		return nil, nil
	}

	listed := make([]string, 0, maxListedWords)
	for _, d := range detected[:min(len(detected), maxListedWords)] {
		listed = append(listed, fmt.Sprintf("'%s' (%dx)", d[0], d[1]))
	}

	for _, d := range detected {
		sp, ok := prose.LocateWord(doc.Text, d[0].(string))
		if !ok {
			continue
		}
		msg := fmt.Sprintf("AI vocabulary detected: %d occurrences (%.1f per 1,000 words). Words: %s",
			total, rate, strings.Join(listed, ", "))
		return []lint.Finding{
			lint.AtSpan(doc, sev, msg, sp).
				With("total_count", total).
				With("rate", rate).
				With("detected_words", detected[:min(len(detected), maxDetailWords)]),
		}, nil
	}
	return nil, nil
}
