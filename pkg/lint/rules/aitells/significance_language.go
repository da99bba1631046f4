package aitells

import (
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/lint/internal/match"
)

func init() {
	lint.Register(SignificanceLanguage)
}

var significancePatterns = match.Exprs(
	// "stands as a testament"
	`\b(stands?|serves?|marks?|represents?)\s+(as\s+)?a\s+(testament|reminder|symbol|pivotal|crucial|vital|significant|key)\b`,
	`\b(underscores?|highlights?|emphasizes?|symbolizes?)\s+(its|their|the)\s+(importance|significance|role|impact|legacy)\b`,
	`\bplays?\s+a\s+(vital|significant|crucial|pivotal|key)\s+(role|part)\b`,
	`\b(enduring|lasting|ongoing|continued)\s+(legacy|significance|impact|relevance|importance)\b`,
	// broader context
	`\b(reflects?|represents?|symbolizes?)\s+(broader|wider|larger)\s+(trends?|movements?|contexts?|patterns?)\b`,
	`\b(contribut(es?|ing)|contribut(es?|ed))\s+to\s+the\s+(broader|wider|larger|overall)\b`,
	`\b(setting\s+the\s+stage|marking|shaping)\s+(the|a)\b`,
	`\b(deeply|firmly)\s+(rooted|embedded|ingrained)\b`,
	`\b(focal\s+point|indelible\s+mark|key\s+turning\s+point|pivotal\s+moment)\b`,
)

var significance = match.Counted{
	Defaults:  significancePatterns,
	Threshold: 2,
	FailAt:    4,
	Message:   "Overemphasis on significance/legacy: %d instances of AI significance language",
}

// SignificanceLanguage flags statements that inflate a topic's importance or legacy.
var SignificanceLanguage = lint.RuleDef{
	ID:          "significance-language",
	Name:        "aitells.significance_language",
	Group:       "ai-tells",
	Description: "Flag phrases that inflate significance, legacy or broader trends.",
	Severity:    lint.SeverityFail,
	ConfigKeys:  []string{"patterns", "threshold_count"},
	Check:       significance.Check,
	Rationale:   "Generated text tends to close paragraphs by asserting that the subject matters, without saying why.",
	BadExample:  "The bridge stands as a testament to the town's enduring legacy.",
	GoodExample: "The bridge, built in 1889, still carries 4,000 cars a day.",
}
