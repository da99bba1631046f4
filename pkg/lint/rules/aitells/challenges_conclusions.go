package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(ChallengesConclusions)
}

var challengesPatterns = match.Exprs(
	`\b[Dd]espite\s+(its|their|the)\s+[\w\s,]+faces?\s+(several\s+)?(challenges?|obstacles?|difficulties?)\b`,
	// section headings
	`\b(Challenges?\s+and\s+(Legacy|Future|Prospects?)|Future\s+(Outlook|Prospects?))\b`,
	`\b[Dd]espite\s+these\s+(challenges?|obstacles?),?[\w\s,]+continues?\s+to\b`,
	`\b[Ff]uture\s+(investments?|developments?|initiatives?)\s+[\w\s,]+could\s+(enhance|improve|maintain)\b`,
)

var challenges = match.Counted{
	Defaults:  challengesPatterns,
	Threshold: 1,
	FailAt:    2,
	Message:   "Formulaic challenges/conclusions section detected: %d AI-style outline patterns",
}

// ChallengesConclusions flags outline-style "challenges and future prospects" passages.
var ChallengesConclusions = lint.RuleDef{
	ID:          "challenges-conclusions",
	Name:        "aitells.challenges_conclusions",
	Group:       "ai-tells",
	Description: "Flag formulaic 'despite its ..., faces challenges' conclusions.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"patterns"},
	Check:       challenges.Check,
	Rationale:   "Generated articles often end on a stock section that names vague challenges and then a vaguely positive outlook.",
	BadExample:  "Despite its success, the city faces several challenges.",
	GoodExample: "The city's water supply will fall short by 2030 under current use.",
}
