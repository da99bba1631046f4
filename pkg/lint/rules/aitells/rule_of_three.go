package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(RuleOfThree)
}

var ruleOfThreePatterns = match.Exprs(
	`\b(\w+),\s+(\w+),?\s+and\s+(\w+)\s+(approach|method|system|framework|strategy|solution|model|perspective)\b`,
	`\b(\w+\s+\w+),\s+(\w+\s+\w+),?\s+and\s+(\w+\s+\w+)\b`,
)

var ruleOfThree = match.Counted{
	Defaults:  ruleOfThreePatterns,
	Threshold: 3,
	Message:   "Overuse of 'rule of three': %d instances of formulaic X, Y, and Z patterns",
}

// RuleOfThree flags repeated "X, Y, and Z" triplets.
var RuleOfThree = lint.RuleDef{
	ID:          "rule-of-three",
	Name:        "aitells.rule_of_three",
	Group:       "ai-tells",
	Description: "Flag repeated formulaic 'X, Y, and Z' lists.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"patterns", "threshold_count"},
	Check:       ruleOfThree.Check,
	Rationale:   "Triplets make shallow analysis look comprehensive. One is rhetoric; several in a document is a tic.",
	BadExample:  "A holistic, scalable, and robust approach.",
	GoodExample: "An approach that handles 10x load without new hardware.",
}
