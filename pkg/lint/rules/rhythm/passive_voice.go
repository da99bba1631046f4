package rhythm

import (
	"fmt"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(PassiveVoice)
}

// PassiveVoice flags a high share of sentences in the passive voice.
var PassiveVoice = lint.RuleDef{
	ID:          "passive-voice",
	Name:        "rhythm.passive_voice",
	Group:       "rhythm",
	Description: "Limit the share of sentences using the passive voice.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"threshold_percent"},
	Check:       checkPassiveVoice,
	Rationale:   "Passive sentences hide who acted. A few are fine; many make prose evasive and slow.",
	BadExample:  "The outage was caused by a config change that was made on Friday.",
	GoodExample: "A config change we made on Friday caused the outage.",
	Fix:         "Name the actor and make it the subject.",
}

// Auxiliary followed by a past participle. Irregular participles are listed.
const passivePattern = `\b(was|were|is|are|been|be)\s+(\w+ed|been|done|made|taken|given|shown|seen|found|used|known)\b`

func checkPassiveVoice(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	sentences := prose.SplitSentences(doc.Text)
	if len(sentences) == 0 {
		return nil, nil
	}

	re, err := prose.Compile(passivePattern)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, s := range sentences {
		if re.MatchString(s) {
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}

	threshold := lint.GetFloatOption(opts, "threshold_percent", 12)
	percent := prose.Percentage(count, len(sentences))
	if percent <= threshold {
		return nil, nil
	}

	loc := re.FindStringIndex(doc.Text)
	if loc == nil {
		return nil, nil
	}
	msg := fmt.Sprintf("High passive voice usage: %.1f%% of sentences (threshold: %v%%)", percent, threshold)
	return []lint.Finding{
		lint.At(doc, core.SeverityWarn, msg, loc[0], loc[1]).
			With("percent", percent).
			With("count", count).
			With("total_sentences", len(sentences)),
	}, nil
}
