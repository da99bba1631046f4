package aitells

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

func runRule(t *testing.T, rule lint.RuleDef, text string, opts map[string]any) []lint.Finding {
	t.Helper()
	findings, err := rule.Check(core.NewDocument("doc.md", text), opts)
	require.NoError(t, err)
	return findings
}

func TestAIVocabulary(t *testing.T) {
	t.Run("dense", func(t *testing.T) {
		findings := runRule(t, AIVocabulary, "We delve into the tapestry.", nil)
		require.Len(t, findings, 1)
		f := findings[0]
		assert.Equal(t, core.SeverityFail, f.Severity)
		assert.Equal(t, "AI vocabulary detected: 2 occurrences (400.0 per 1,000 words). Words: 'delve' (1x), 'tapestry' (1x)", f.Message)
		assert.Equal(t, 2, f.Details["total_count"])
		assert.Equal(t, [][]any{{"delve", 1}, {"tapestry", 1}}, f.Details["detected_words"])
		assert.Contains(t, f.Snippet, "delve")
	})

	t.Run("cluster below rate", func(t *testing.T) {
		text := strings.Repeat("plain ", 1000) + "crucial pivotal vibrant"
		findings := runRule(t, AIVocabulary, text, nil)
		require.Len(t, findings, 1)
		assert.Equal(t, core.SeverityWarn, findings[0].Severity)
	})

	t.Run("sparse and unclustered", func(t *testing.T) {
		text := strings.Repeat("plain ", 1000) + "crucial pivotal"
		assert.Empty(t, runRule(t, AIVocabulary, text, nil))
	})

	t.Run("custom list", func(t *testing.T) {
		findings := runRule(t, AIVocabulary, "Synergy synergy.", map[string]any{"ai_words": []any{"synergy"}})
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "'synergy' (2x)")
	})

	t.Run("message lists at most five words", func(t *testing.T) {
		findings := runRule(t, AIVocabulary, "align crucial delve enduring enhance foster garner", nil)
		require.Len(t, findings, 1)
		assert.Equal(t, 5, strings.Count(findings[0].Message, "(1x)"))
		assert.Len(t, findings[0].Details["detected_words"], 7)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, runRule(t, AIVocabulary, "", nil))
	})
}

func TestCountedRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    lint.RuleDef
		text    string
		want    core.Severity
		count   int
		message string
	}{
		{
			name:    "significance",
			rule:    SignificanceLanguage,
			text:    "It stands as a testament to hope. Its enduring legacy remains.",
			want:    core.SeverityWarn,
			count:   2,
			message: "Overemphasis on significance/legacy: 2 instances of AI significance language",
		},
		{
			name:  "significance escalates",
			rule:  SignificanceLanguage,
			text:  "It stands as a testament. It plays a vital role. Its enduring legacy. It is deeply rooted.",
			want:  core.SeverityFail,
			count: 4,
		},
		{
			name:    "promotional",
			rule:    PromotionalLanguage,
			text:    "The town boasts a vibrant culture.",
			want:    core.SeverityWarn,
			count:   2,
			message: "Promotional language detected: 2 instances of puffery/marketing language",
		},
		{
			name:  "superficial",
			rule:  SuperficialAnalysis,
			text:  "It grew, highlighting the importance of trade. It spread, fostering growth. It lasted, spanning decades.",
			want:  core.SeverityWarn,
			count: 3,
		},
		{
			name:    "copulative",
			rule:    CopulativeAvoidance,
			text:    "It serves as a hub. It features a pool. It offers the best view.",
			want:    core.SeverityWarn,
			count:   3,
			message: "Copulative avoidance: 3 instances of 'serves as/features' instead of 'is/has'",
		},
		{
			name:  "challenges single",
			rule:  ChallengesConclusions,
			text:  "Despite its success, the city faces several challenges.",
			want:  core.SeverityWarn,
			count: 1,
		},
		{
			name:  "challenges escalates",
			rule:  ChallengesConclusions,
			text:  "Future Outlook\n\nDespite its success, the city faces several challenges.",
			want:  core.SeverityFail,
			count: 2,
		},
		{
			name:  "vague attribution",
			rule:  VagueAttribution,
			text:  "According to research, it works. Experts have noted the gains.",
			want:  core.SeverityWarn,
			count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runRule(t, tt.rule, tt.text, nil)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.want, findings[0].Severity)
			assert.Equal(t, tt.count, findings[0].Details["count"])
			if tt.message != "" {
				assert.Equal(t, tt.message, findings[0].Message)
			}
		})
	}
}

func TestCountedRules_BelowThreshold(t *testing.T) {
	assert.Empty(t, runRule(t, SignificanceLanguage, "It stands as a testament to hope.", nil))
	assert.Empty(t, runRule(t, VagueAttribution, "According to research by Smith, it works. Experts have noted the gains.", nil))
	assert.Empty(t, runRule(t, ChallengesConclusions, "The city is fine.", nil))
	assert.Empty(t, runRule(t, RuleOfThree, "A fast, cheap, and simple approach.", nil))
}

func TestRuleOfThree(t *testing.T) {
	text := "A fast, cheap, and simple approach. A clear, calm, and steady method. A lean, quick, and tidy model."
	findings := runRule(t, RuleOfThree, text, nil)
	require.Len(t, findings, 1)
	assert.Equal(t, "Overuse of 'rule of three': 3 instances of formulaic X, Y, and Z patterns", findings[0].Message)
}

func TestNotabilityEmphasis(t *testing.T) {
	text := "She was featured in Forbes, Wired and other media outlets. She has an active social media presence."
	findings := runRule(t, NotabilityEmphasis, text, nil)
	require.Len(t, findings, 1)
	assert.Equal(t, core.SeverityWarn, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "Overemphasis on notability")
}

func TestNegativeParallelism(t *testing.T) {
	findings := runRule(t, NegativeParallelism, "It is not only fast but also cheap.", nil)
	require.Len(t, findings, 1)
	assert.Equal(t, "Negative parallelism detected: 'not only fast but also cheap'", findings[0].Message)
	assert.Equal(t, "not only fast but also cheap", findings[0].Details["phrase"])

	text := strings.Repeat("No fuss, no drama, just results. ", 4)
	assert.Len(t, runRule(t, NegativeParallelism, text, nil), 3, "capped at three")
}

func TestKnowledgeCutoff(t *testing.T) {
	findings := runRule(t, KnowledgeCutoff, "As of my last update, the firm had 200 staff.", nil)
	require.Len(t, findings, 1)
	assert.Equal(t, core.SeverityFail, findings[0].Severity)
	assert.Equal(t, "Knowledge cutoff disclaimer: 'As of my last update'", findings[0].Message)

	assert.Empty(t, runRule(t, KnowledgeCutoff, "In March the firm had 200 staff.", nil))
}

func TestPatternOverride(t *testing.T) {
	opts := map[string]any{"patterns": []any{`\bfoo\b`}}
	findings := runRule(t, SignificanceLanguage, "foo and FOO", opts)
	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Details["count"])

	_, err := SignificanceLanguage.Check(core.NewDocument("d.md", "x"), map[string]any{"patterns": []any{`(?<=a)b`}})
	assert.Error(t, err)
}

func TestMonotonicity(t *testing.T) {
	base := "It stands as a testament to hope."
	more := base + " Its enduring legacy remains. It plays a vital role."

	count := func(text string) int {
		findings := runRule(t, SignificanceLanguage, text, map[string]any{"threshold_count": 1})
		if len(findings) == 0 {
			return 0
		}
		return findings[0].Details["count"].(int)
	}
	assert.GreaterOrEqual(t, count(more), count(base))
}
