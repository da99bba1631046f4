package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(NegativeParallelism)
}

var negativeParallelismPatterns = match.Exprs(
	`\bnot\s+only\s+\w+[\w\s,]+but\s+(also\s+)?\w+`,
	`\bnot\s+(just|merely|simply)\s+\w+[\w\s,]+but\s+\w+`,
	`\bit'?s\s+not\s+\w+[\w\s,]+it'?s\s+\w+`,
	`\bno\s+\w+,\s+no\s+\w+,\s+just\s+\w+`,
	`\bnot\s+\w+[\w\s,]+\.\s+[Rr]ather,?\s+(it|this)\s+(is|constitutes|represents)\b`,
)

var negativeParallelism = match.Each{
	Defaults: negativeParallelismPatterns,
	Severity: core.SeverityWarn,
	Limit:    3,
	Message:  "Negative parallelism detected: '%s'",
	Clip:     50,
}

// NegativeParallelism flags "not only X but Y" style constructions.
var NegativeParallelism = lint.RuleDef{
	ID:          "negative-parallelism",
	Name:        "aitells.negative_parallelism",
	Group:       "ai-tells",
	Description: "Flag 'not only ... but also' and similar balanced constructions.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"patterns"},
	Check:       negativeParallelism.Check,
	Rationale:   "These constructions make a plain statement look balanced and considered. Generated text leans on them heavily.",
	BadExample:  "It's not just a tool, it's a movement.",
	GoodExample: "The tool has 2,000 contributors.",
}
