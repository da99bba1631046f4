package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(SuperficialAnalysis)
}

// Trailing participle clauses that comment on the sentence they end.
var superficialPatterns = match.Exprs(
	`,\s+(highlighting|underscoring|emphasizing|demonstrating|illustrating|showcasing|reflecting|symbolizing)\s+(the|its|their)\s+(importance|significance|impact|role|value|legacy)\b`,
	`,\s+(ensuring|cultivating|fostering|promoting|enabling|facilitating)\s+\w+`,
	`,\s+(contributing\s+to|reflecting|symbolizing)\s+\w+`,
	`,\s+(encompassing|spanning|including)\s+\w+`,
	`,\s+(aligning|resonating)\s+with\b`,
)

var superficial = match.Counted{
	Defaults:  superficialPatterns,
	Threshold: 3,
	FailAt:    5,
	Message:   "Superficial analysis detected: %d trailing -ing phrases adding empty commentary",
}

// SuperficialAnalysis flags trailing -ing clauses that add commentary instead of content.
var SuperficialAnalysis = lint.RuleDef{
	ID:          "superficial-analysis",
	Name:        "aitells.superficial_analysis",
	Group:       "ai-tells",
	Description: "Flag trailing -ing clauses that add empty commentary.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"patterns", "threshold_count"},
	Check:       superficial.Check,
	Rationale:   "A clause like ', highlighting its importance' sounds analytical but states nothing the reader can check.",
	BadExample:  "The festival draws 10,000 visitors, highlighting its importance to the region.",
	GoodExample: "The festival draws 10,000 visitors, a third of the region's annual tourism.",
}
