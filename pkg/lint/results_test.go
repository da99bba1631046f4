package lint_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

func findingsOf(ruleID string, sevs ...core.Severity) []lint.Finding {
	out := make([]lint.Finding, len(sevs))
	for i, s := range sevs {
		out[i] = lint.Finding{RuleID: ruleID, Severity: s, Details: map[string]any{}}
	}
	return out
}

func TestCountSeverities_ZeroFilled(t *testing.T) {
	counts := lint.CountSeverities(lint.NewResults())
	assert.Equal(t, lint.SeverityCounts{core.SeverityPass: 0, core.SeverityWarn: 0, core.SeverityFail: 0}, counts)

	r := lint.NewResults()
	r.Add("a.md", findingsOf("x", core.SeverityWarn, core.SeverityWarn))
	r.Add("b.md", findingsOf("y", core.SeverityFail))
	counts = lint.CountSeverities(r)
	assert.Equal(t, 0, counts[core.SeverityPass])
	assert.Equal(t, 2, counts[core.SeverityWarn])
	assert.Equal(t, 1, counts[core.SeverityFail])
}

func TestShouldFail(t *testing.T) {
	tests := []struct {
		name      string
		counts    lint.SeverityCounts
		threshold core.Severity
		want      bool
	}{
		{"warn threshold trips on warn", lint.SeverityCounts{core.SeverityFail: 0, core.SeverityWarn: 1, core.SeverityPass: 5}, core.SeverityWarn, true},
		{"warn threshold ignores pass", lint.SeverityCounts{core.SeverityFail: 0, core.SeverityWarn: 0, core.SeverityPass: 5}, core.SeverityWarn, false},
		{"fail threshold ignores warn", lint.SeverityCounts{core.SeverityFail: 0, core.SeverityWarn: 3, core.SeverityPass: 0}, core.SeverityFail, false},
		{"fail threshold trips on fail", lint.SeverityCounts{core.SeverityFail: 1}, core.SeverityFail, true},
		{"warn threshold trips on fail", lint.SeverityCounts{core.SeverityFail: 1}, core.SeverityWarn, true},
		{"pass threshold trips on anything", lint.SeverityCounts{core.SeverityPass: 1}, core.SeverityPass, true},
		{"pass threshold with nothing", lint.NewSeverityCounts(), core.SeverityPass, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lint.ShouldFail(tt.counts, tt.threshold))
		})
	}
}

func TestResults_AddKeepsOrder(t *testing.T) {
	r := lint.NewResults()
	r.Add("z.md", findingsOf("a", core.SeverityWarn))
	r.Add("a.md", findingsOf("a", core.SeverityWarn))
	r.Add("z.md", findingsOf("b", core.SeverityFail))

	assert.Equal(t, []string{"z.md", "a.md"}, r.Paths())
	assert.Len(t, r.Findings("z.md"), 2)
	assert.Equal(t, 3, r.TotalFindings())
}

func TestSummarize(t *testing.T) {
	r := lint.NewResults()
	f := findingsOf("adverbs", core.SeverityWarn)
	f[0].Category = "style"
	r.Add("a.md", f)
	r.Add("a.md", findingsOf("passive-voice", core.SeverityWarn, core.SeverityWarn))
	r.Add("b.md", findingsOf("knowledge-cutoff", core.SeverityFail, core.SeverityFail, core.SeverityFail))

	s := lint.Summarize(r)
	assert.Equal(t, 2, s.TotalFiles)
	assert.Equal(t, 6, s.TotalFindings)
	require.Len(t, s.TopRules, 3)
	assert.Equal(t, "knowledge-cutoff", s.TopRules[0].RuleID)
	assert.Equal(t, "passive-voice", s.TopRules[1].RuleID)
	assert.Equal(t, "adverbs", s.TopRules[2].RuleID)
	assert.Equal(t, map[string]int{"style": 1, "general": 5}, s.CategoryCounts)

	data, err := json.Marshal(s.TopRules)
	require.NoError(t, err)
	assert.Equal(t, `{"knowledge-cutoff":3,"passive-voice":2,"adverbs":1}`, string(data))

	empty, err := json.Marshal(lint.Summarize(lint.NewResults()).TopRules)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestFinding_JSONShape(t *testing.T) {
	doc := core.NewDocument("doc.md", "line one\nthe target word")
	f := lint.At(doc, core.SeverityWarn, "msg", 13, 19).With("word", "target")
	f.RuleID = "banned-words"
	f.FilePath = doc.Path

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "banned-words", got["rule_id"])
	assert.Equal(t, "WARN", got["severity"])
	assert.Equal(t, "doc.md", got["file_path"])
	assert.Equal(t, float64(2), got["line"])
	assert.Equal(t, map[string]any{"word": "target"}, got["details"])
	assert.NotContains(t, got, "Category")

	f.Line = nil
	data, err = json.Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"line":null`)
}

func TestFinding_JSONFloatDetails(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "whole float keeps decimal", value: 100.0, want: `100.0`},
		{name: "zero float", value: 0.0, want: `0.0`},
		{name: "negative whole float", value: -3.0, want: `-3.0`},
		{name: "fractional float", value: 40.5, want: `40.5`},
		{name: "int stays int", value: 4, want: `4`},
		{name: "float32", value: float32(2), want: `2.0`},
		{name: "float list", value: []float64{1, 2.5}, want: `[1.0,2.5]`},
		{name: "nested", value: map[string]any{"r": 5.0}, want: `{"r":5.0}`},
		{name: "string untouched", value: "100", want: `"100"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := lint.Finding{RuleID: "r", Severity: core.SeverityWarn, Details: map[string]any{"v": tt.value}}
			data, err := json.Marshal(f)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"details":{"v":`+tt.want+`}`)
		})
	}

	t.Run("value is not mutated", func(t *testing.T) {
		f := lint.Finding{Details: map[string]any{"rate": 100.0}}
		_, err := json.Marshal(f)
		require.NoError(t, err)
		assert.IsType(t, float64(0), f.Details["rate"])
	})
}

func TestOptions(t *testing.T) {
	opts := map[string]any{
		"i":     3,
		"f":     2.5,
		"i64":   int64(7),
		"words": []any{"a", 1, nil, "b"},
		"s":     "x",
	}
	assert.Equal(t, 3, lint.GetIntOption(opts, "i", 0))
	assert.Equal(t, 0, lint.GetIntOption(opts, "f", 0))
	assert.Equal(t, 9, lint.GetIntOption(opts, "missing", 9))
	assert.InDelta(t, 3.0, lint.GetFloatOption(opts, "i", 0), 1e-9)
	assert.InDelta(t, 2.5, lint.GetFloatOption(opts, "f", 0), 1e-9)
	assert.InDelta(t, 7.0, lint.GetFloatOption(opts, "i64", 0), 1e-9)
	assert.InDelta(t, 1.5, lint.GetFloatOption(opts, "s", 1.5), 1e-9)
	assert.Equal(t, []string{"a", "1", "b"}, lint.GetStringSliceOption(opts, "words", nil))
	assert.Equal(t, "x", lint.GetStringOption(opts, "s", ""))
	assert.Nil(t, lint.GetStringSliceOption(nil, "words", nil))
}

func TestGetIntOption_Floats(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "integral float", value: 3.0, want: 3},
		{name: "fractional float", value: 2.9, want: 5},
		{name: "negative fractional float", value: -1.5, want: 5},
		{name: "NaN", value: math.NaN(), want: 5},
		{name: "infinity", value: math.Inf(1), want: 5},
		{name: "uint64", value: uint64(4), want: 4},
		{name: "string", value: "3", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := map[string]any{"n": tt.value}
			assert.Equal(t, tt.want, lint.GetIntOption(opts, "n", 5))
		})
	}
}
