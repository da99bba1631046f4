package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/pkg/core"
)

func TestSeverity_Ordering(t *testing.T) {
	assert.Less(t, core.SeverityPass, core.SeverityWarn)
	assert.Less(t, core.SeverityWarn, core.SeverityFail)
	assert.Equal(t, []core.Severity{core.SeverityFail, core.SeverityWarn, core.SeverityPass}, core.Severities)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   core.Severity
		wantOK bool
	}{
		{"FAIL", core.SeverityFail, true},
		{"fail", core.SeverityFail, true},
		{"WARN", core.SeverityWarn, true},
		{" warn ", core.SeverityWarn, true},
		{"PASS", core.SeverityPass, true},
		{"bogus", core.SeverityFail, false},
		{"", core.SeverityFail, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := core.ParseSeverity(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(map[core.Severity]int{core.SeverityWarn: 2, core.SeverityFail: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"WARN":2,"FAIL":1}`, string(data))

	var s core.Severity
	require.NoError(t, json.Unmarshal([]byte(`"PASS"`), &s))
	assert.Equal(t, core.SeverityPass, s)

	assert.Error(t, json.Unmarshal([]byte(`"LOUD"`), &s))
}

func TestRuleConfig_Accessors(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := core.RuleConfig{"id": "adverbs"}
		assert.Equal(t, "adverbs", c.ID())
		assert.True(t, c.Enabled())
		assert.Equal(t, core.DefaultCategory, c.Category())
		assert.Empty(t, c.Description())
		assert.NoError(t, c.Validate())
	})

	t.Run("explicit values", func(t *testing.T) {
		c := core.RuleConfig{
			"id":          "ai-vocabulary",
			"enabled":     false,
			"category":    "ai-tells",
			"description": "AI words",
		}
		assert.False(t, c.Enabled())
		assert.Equal(t, "ai-tells", c.Category())
		assert.Equal(t, "AI words", c.Description())
	})

	t.Run("missing id", func(t *testing.T) {
		c := core.RuleConfig{"enabled": true}
		assert.ErrorIs(t, c.Validate(), core.ErrMissingRuleID)
	})
}

func TestLintConfig_EnabledRules(t *testing.T) {
	cfg := &core.LintConfig{Rules: []core.RuleConfig{
		{"id": "adverbs"},
		{"id": "transitions", "enabled": false},
		{"id": "passive-voice", "enabled": true},
	}}

	enabled := cfg.EnabledRules()
	require.Len(t, enabled, 2)
	assert.Equal(t, "adverbs", enabled[0].ID())
	assert.Equal(t, "passive-voice", enabled[1].ID())

	r, ok := cfg.Rule("transitions")
	require.True(t, ok)
	assert.False(t, r.Enabled())
}
