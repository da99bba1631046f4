package style

import (
	"fmt"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(StackedIntensifiers)
}

// StackedIntensifiers flags an intensifier directly in front of an -ly word.
var StackedIntensifiers = lint.RuleDef{
	ID:          "stacked-intensifiers",
	Name:        "style.stacked_intensifiers",
	Group:       "style",
	Description: "Flag intensifiers stacked on -ly adverbs, like 'really quickly'.",
	Severity:    lint.SeverityFail,
	Check:       checkStackedIntensifiers,
	Rationale:   "Two modifiers doing one job signal that neither is doing it well.",
	BadExample:  "The query ran extremely slowly.",
	GoodExample: "The query took nine seconds.",
}

const stackedIntensifierPattern = `\b(really|very|extremely|incredibly|absolutely|totally|completely)\s+\w+ly\b`

func checkStackedIntensifiers(doc *core.Document, _ map[string]any) ([]lint.Finding, error) {
	spans, err := prose.FindAll(doc.Text, stackedIntensifierPattern)
	if err != nil {
		return nil, err
	}
	findings := make([]lint.Finding, 0, len(spans))
	for _, sp := range spans {
		phrase := sp.Text(doc.Text)
		findings = append(findings, lint.AtSpan(doc, core.SeverityFail, fmt.Sprintf("Stacked intensifier: '%s'", phrase), sp).
			With("phrase", phrase))
	}
	return findings, nil
}
