package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(VagueAttribution)
}

var vagueAttributionPatterns = []match.Pattern{
	{Expr: `\b([Oo]bservers?|[Ee]xperts?|[Aa]nalysts?|[Ss]cholars?|[Rr]esearchers?)\s+(have\s+)?(noted|cited|argued|suggested|observed|pointed\s+out)\b`},
	{Expr: `\b[Ii]ndustry\s+(reports?|studies?|analyses?)\s+(suggest|indicate|show)\b`},
	{Expr: `\b[Ss]ome\s+(critics?|sources?|publications?|reviewers?)\s+(argue|suggest|note|claim)\b`},
	{Expr: `\b[Ss]everal\s+(sources?|publications?|studies?)\s+(have\s+)?(cited|noted|described)\b`},
	{Expr: `\b(has|have)\s+been\s+(described|characterized|noted|cited)\s+as\b`},
	// "according to research by Smith" names its source
	{Expr: `\b[Aa]ccording\s+to\s+(research|studies?)\b`, Unless: `\s+by\s+\w`},
}

var vagueAttribution = match.Counted{
	Defaults:  vagueAttributionPatterns,
	Threshold: 2,
	Message:   "Vague attribution/weasel wording: %d instances of uncited claims to vague authorities",
}

// VagueAttribution flags claims credited to unnamed authorities.
var VagueAttribution = lint.RuleDef{
	ID:          "vague-attribution",
	Name:        "aitells.vague_attribution",
	Group:       "ai-tells",
	Description: "Flag claims attributed to unnamed experts, studies or sources.",
	Severity:    lint.SeverityWarn,
	ConfigKeys:  []string{"patterns", "threshold_count"},
	Check:       vagueAttribution.Check,
	Rationale:   "'Experts have noted' borrows authority without a citation the reader can check.",
	BadExample:  "Experts have noted that the policy failed.",
	GoodExample: "A 2023 GAO audit found the policy missed 4 of 5 targets.",
	Fix:         "Name the source or drop the attribution.",
}
