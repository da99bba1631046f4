package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(PromotionalLanguage)
}

var promotionalPatterns = match.Exprs(
	`\b(boasts?|features?|offers?|showcases?)\s+a\b`,
	`\b(vibrant|rich|profound|breathtaking|stunning|remarkable|exceptional|outstanding)\s+(culture|heritage|landscape|history|tradition|community)\b`,
	`\b(enhancing|enriching|elevating)\s+(its|their|the)\b`,
	`\b(natural\s+beauty|scenic\s+landscapes?|breathtaking\s+views?)\b`,
	`\b(nestled|situated|located)\s+(in\s+the\s+heart\s+of|within|amidst)\b`,
	`\b(groundbreaking|revolutionary|pioneering|innovative)\s+(work|research|approach|method)\b`,
	`\b(renowned|celebrated|acclaimed|distinguished|esteemed)\s+(for|as)\b`,
	`\b(commitment|dedication)\s+to\s+(excellence|quality|sustainability|innovation)\b`,
	`\b(clean\s+and\s+modern|state-of-the-art|world-class|cutting-edge)\b`,
)

var promotional = match.Counted{
	Defaults:  promotionalPatterns,
	Threshold: 2,
	FailAt:    4,
	Message:   "Promotional language detected: %d instances of puffery/marketing language",
}

// PromotionalLanguage flags advertising tone in text meant to be neutral.
var PromotionalLanguage = lint.RuleDef{
	ID:          "promotional-language",
	Name:        "aitells.promotional_language",
	Group:       "ai-tells",
	Description: "Flag puffery and marketing language.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"patterns", "threshold_count"},
	Check:       promotional.Check,
	Rationale:   "Generated text drifts into brochure tone, especially about places and culture, even when asked to be neutral.",
	BadExample:  "Nestled in the heart of the valley, the town boasts a vibrant culture.",
	GoodExample: "The town sits in the valley floor and hosts a weekly folk market.",
}
