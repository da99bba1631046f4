package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(CopulativeAvoidance)
}

var copulativePatterns = match.Exprs(
	`\b(serves?|stands?)\s+as\s+(a|an|the)\s+\w+`,
	`\b(features?|offers?)\s+(a|an|the|numerous|several|many)\s+\w+`,
	`\b(marks?|represents?)\s+(a|an|the)\s+(shift|change|transition|milestone)\b`,
	`\bholds?\s+the\s+(distinction|position|role)\b`,
)

var copulative = match.Counted{
	Defaults:  copulativePatterns,
	Threshold: 3,
	Message:   "Copulative avoidance: %d instances of 'serves as/features' instead of 'is/has'",
}

// CopulativeAvoidance flags "serves as" and "features" standing in for "is" and "has".
var CopulativeAvoidance = lint.RuleDef{
	ID:          "copulative-avoidance",
	Name:        "aitells.copulative_avoidance",
	Group:       "ai-tells",
	Description: "Flag 'serves as' and 'features' used in place of 'is' and 'has'.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"patterns", "threshold_count"},
	Check:       copulative.Check,
	BadExample:  "The library serves as the main hub and features a large reading room.",
	GoodExample: "The library is the main hub and has a large reading room.",
}
