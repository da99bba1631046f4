package rules_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	_ "github.com/leapstack-labs/contentlint/pkg/lint/rules"
)

var builtinIDs = []string{
	"banned-words", "weak-phrases", "adverbs", "stacked-intensifiers", "transitions",
	"conjunction-starts", "vague-this", "sentence-variance", "passive-voice", "repetition",
	"ai-vocabulary", "significance-language", "promotional-language", "superficial-analysis",
	"copulative-avoidance", "negative-parallelism", "rule-of-three", "challenges-conclusions",
	"knowledge-cutoff", "vague-attribution", "notability-emphasis", "custom-script",
}

func TestAllRulesRegistered(t *testing.T) {
	for _, id := range builtinIDs {
		def, ok := lint.GetByID(id)
		require.True(t, ok, "rule %s not registered", id)
		assert.NotEmpty(t, def.Name, id)
		assert.NotEmpty(t, def.Group, id)
		assert.NotEmpty(t, def.Description, id)
		assert.True(t, def.Severity.Valid(), id)
		assert.True(t, def.Check != nil || def.Setup != nil, id)
	}
}

func TestRuleInfo(t *testing.T) {
	for _, def := range lint.GetAll() {
		info := lint.GetRuleInfo(lint.WrapRuleDef(def))
		assert.Equal(t, def.ID, info.ID)
		assert.Equal(t, def.Severity, info.DefaultSeverity)
	}
}

func builtinConfig() *lint.Config {
	var entries []core.RuleConfig
	for _, id := range builtinIDs {
		if id == "custom-script" {
			continue
		}
		entries = append(entries, core.RuleConfig{"id": id})
	}
	entries[0]["banned_words"] = []any{"very", "really"}
	entries[1]["phrases"] = []any{"I think", "I believe"}
	entries[4]["transitions"] = []any{"moreover", "furthermore", "additionally"}
	return lint.NewConfig(entries...)
}

const sloppy = `This is a pivotal moment. It stands as a testament to the enduring legacy of the town.
I think the plan is very, very good. Moreover, it was reviewed by experts. Furthermore, it was approved.

And the team agreed. And the board agreed. And the town agreed.
As of my last update, the project was not widely documented.`

func TestBuiltins_EndToEnd(t *testing.T) {
	a := lint.NewAnalyzer(builtinConfig(), nil)
	require.Len(t, a.Checkers(), len(builtinIDs)-1)

	findings := a.LintDocument(context.Background(), core.NewDocument("sloppy.md", sloppy))
	require.NotEmpty(t, findings)

	seen := map[string]bool{}
	for _, f := range findings {
		seen[f.RuleID] = true
		assert.Equal(t, "sloppy.md", f.FilePath)
		assert.True(t, f.Severity.Valid())
		assert.NotEmpty(t, f.Message)
		assert.NotNil(t, f.Details)
		if f.Line != nil {
			assert.GreaterOrEqual(t, *f.Line, 1)
		}
	}
	for _, id := range []string{"banned-words", "weak-phrases", "conjunction-starts", "knowledge-cutoff", "significance-language"} {
		assert.True(t, seen[id], "expected a finding from %s", id)
	}
}

func TestBuiltins_EmptyDocument(t *testing.T) {
	a := lint.NewAnalyzer(builtinConfig(), nil)
	for _, text := range []string{"", "   \n\n  ", "!!! ... ???"} {
		assert.Empty(t, a.LintDocument(context.Background(), core.NewDocument("empty.md", text)), "%q", text)
	}
}

func TestBuiltins_Idempotent(t *testing.T) {
	a := lint.NewAnalyzer(builtinConfig(), nil)
	doc := core.NewDocument("sloppy.md", sloppy)
	first := a.LintDocument(context.Background(), doc)
	second := a.LintDocument(context.Background(), doc)
	assert.Equal(t, first, second)
}

func TestBuiltins_SnippetsBounded(t *testing.T) {
	a := lint.NewAnalyzer(builtinConfig(), nil)
	text := strings.Repeat(sloppy+"\n\n", 5)
	for _, f := range a.LintDocument(context.Background(), core.NewDocument("big.md", text)) {
		assert.LessOrEqual(t, len([]rune(f.Snippet)), 400, f.RuleID)
	}
}
