package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(KnowledgeCutoff)
}

var knowledgeCutoffPatterns = match.Exprs(
	`\b[Aa]s\s+of\s+(my\s+)?(last\s+)?(knowledge\s+)?(update|training|information)\b`,
	`\b[Uu]p\s+to\s+my\s+last\s+(training\s+)?(update|knowledge)\b`,
	`\b([Ww]hile|[Aa]lthough)\s+(specific\s+)?(details?|information)\s+(is|are|remains?)\s+(limited|scarce|not\s+widely|not\s+extensively)\b`,
	`\b(is\s+)?not\s+(widely\s+)?(documented|available|disclosed|known)\b`,
	`\b[Bb]ased\s+on\s+(available|provided|current)\s+(information|sources|data)\b`,
	`\b(maintains?|keeps?)\s+(a\s+low\s+profile|personal\s+details\s+private|much\s+of\s+.+\s+private)\b`,
)

var knowledgeCutoff = match.Each{
	Defaults: knowledgeCutoffPatterns,
	Severity: core.SeverityFail,
	Limit:    3,
	Message:  "Knowledge cutoff disclaimer: '%s'",
}

// KnowledgeCutoff flags model disclaimers and speculation about missing information.
var KnowledgeCutoff = lint.RuleDef{
	ID:          "knowledge-cutoff",
	Name:        "aitells.knowledge_cutoff",
	Group:       "ai-tells",
	Description: "Flag knowledge-cutoff disclaimers left in published text.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"patterns"},
	Check:       knowledgeCutoff.Check,
	Rationale:   "A disclaimer about training data is an unedited model artifact.",
	BadExample:  "As of my last update, the company had 200 employees.",
	GoodExample: "In March 2024 the company had 200 employees.",
	Fix:         "Verify the fact against a dated source, or remove the sentence.",
}
