package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(NotabilityEmphasis)
}

var notabilityPatterns = match.Exprs(
	`\b[Ii]ndependent\s+coverage\b`,
	`\b(local|regional|national|international)\s+media\s+outlets?\b`,
	`\b(music|business|tech|entertainment)\s+outlets?\b`,
	`\b[Ff]eatured\s+in\s+[\w\s,]+and\s+other\s+(prominent\s+)?(media\s+)?outlets?\b`,
	`\b(has\s+been\s+)?(mentioned|featured|covered|cited)\s+in\s+\w+[\w\s,]+and\s+\w+`,
	`\b(maintains?|has)\s+(an\s+)?active\s+social\s+media\s+presence\b`,
	`\b[Ww]ritten\s+by\s+(a\s+)?leading\s+(expert|authority|scholar)\b`,
)

var notability = match.Counted{
	Defaults:  notabilityPatterns,
	Threshold: 2,
	Message:   "Overemphasis on notability: %d instances claiming media coverage/importance",
}

// NotabilityEmphasis flags claims of media coverage and importance.
var NotabilityEmphasis = lint.RuleDef{
	ID:          "notability-emphasis",
	Name:        "aitells.notability_emphasis",
	Group:       "ai-tells",
	Description: "Flag assertions of media coverage and notability.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"patterns", "threshold_count"},
	Check:       notability.Check,
	BadExample:  "She has been featured in Forbes, Wired, and other prominent media outlets.",
	GoodExample: "Wired profiled her work on mesh networks in 2021.",
}
