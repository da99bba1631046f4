package lint_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/internal/testutil"
	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Test-only rules. IDs are prefixed so they never collide with built-ins.
func init() {
	lint.Register(lint.RuleDef{
		ID:       "test-word",
		Name:     "test.word",
		Group:    "test",
		Severity: core.SeverityWarn,
		Check: func(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
			word := lint.GetStringOption(opts, "word", "x")
			var out []lint.Finding
			idx := strings.Index(doc.Text, word)
			if idx >= 0 {
				out = append(out, lint.At(doc, core.SeverityWarn, "found "+word, idx, idx+len(word)))
			}
			return out, nil
		},
	})
	lint.Register(lint.RuleDef{
		ID:       "test-panic",
		Severity: core.SeverityFail,
		Check: func(*core.Document, map[string]any) ([]lint.Finding, error) {
			panic("boom")
		},
	})
	lint.Register(lint.RuleDef{
		ID:       "test-error",
		Severity: core.SeverityFail,
		Check: func(*core.Document, map[string]any) ([]lint.Finding, error) {
			return nil, errors.New("bad pattern")
		},
	})
	lint.Register(lint.RuleDef{
		ID:       "test-fail",
		Severity: core.SeverityFail,
		Check: func(doc *core.Document, _ map[string]any) ([]lint.Finding, error) {
			return []lint.Finding{lint.At(doc, core.SeverityFail, "always", 0, 0)}, nil
		},
	})
	lint.Register(lint.RuleDef{
		ID:       "test-setup",
		Severity: core.SeverityWarn,
		Setup: func(opts map[string]any) (lint.CheckFunc, error) {
			if opts["broken"] == true {
				return nil, errors.New("cannot prepare")
			}
			return func(*core.Document, map[string]any) ([]lint.Finding, error) { return nil, nil }, nil
		},
	})
}

type recordingObserver struct {
	mu       sync.Mutex
	docs     []string
	failures []string
}

func (o *recordingObserver) DocumentLinted(path string, _ []lint.Finding, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.docs = append(o.docs, path)
}

func (o *recordingObserver) CheckerFailed(ruleID string, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, ruleID)
}

func TestNewChecker(t *testing.T) {
	t.Run("unknown rule", func(t *testing.T) {
		_, err := lint.NewChecker(core.RuleConfig{"id": "nope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, lint.ErrUnknownRule)
		assert.Equal(t, "unknown rule type: nope", err.Error())
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := lint.NewChecker(core.RuleConfig{})
		assert.ErrorIs(t, err, core.ErrMissingRuleID)
	})

	t.Run("setup failure", func(t *testing.T) {
		_, err := lint.NewChecker(core.RuleConfig{"id": "test-setup", "broken": true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot prepare")
	})

	t.Run("stamps identity", func(t *testing.T) {
		c, err := lint.NewChecker(core.RuleConfig{"id": "test-word", "word": "cat", "category": "pets"})
		require.NoError(t, err)

		doc := core.NewDocument("a.md", "the cat sat")
		findings, err := c.Check(doc)
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "test-word", findings[0].RuleID)
		assert.Equal(t, "a.md", findings[0].FilePath)
		assert.Equal(t, "pets", findings[0].Category)
		require.NotNil(t, findings[0].Line)
		assert.Equal(t, 1, *findings[0].Line)
	})
}

func TestAnalyzer_SkipsBadAndDisabledRules(t *testing.T) {
	cfg := lint.NewConfig(
		core.RuleConfig{"id": "nope"},
		core.RuleConfig{"id": "test-word", "word": "a"},
		core.RuleConfig{"id": "test-fail", "enabled": false},
		core.RuleConfig{"id": "test-setup", "broken": true},
	)

	a := lint.NewAnalyzer(cfg, testutil.NewTestLogger(t))
	require.Len(t, a.Checkers(), 1)
	assert.Equal(t, "test-word", a.Checkers()[0].ID())
}

func TestAnalyzer_IsolatesFailingCheckers(t *testing.T) {
	obs := &recordingObserver{}
	cfg := lint.NewConfig(
		core.RuleConfig{"id": "test-panic"},
		core.RuleConfig{"id": "test-word", "word": "cat"},
		core.RuleConfig{"id": "test-error"},
		core.RuleConfig{"id": "test-fail"},
	)
	a := lint.NewAnalyzer(cfg, testutil.NewTestLogger(t), lint.WithObserver(obs))

	findings := a.LintDocument(context.Background(), core.NewDocument("doc.md", "a cat"))
	require.Len(t, findings, 2)
	assert.Equal(t, "test-word", findings[0].RuleID, "findings follow checker order")
	assert.Equal(t, "test-fail", findings[1].RuleID)

	assert.ElementsMatch(t, []string{"test-panic", "test-error"}, obs.failures)
	assert.Equal(t, []string{"doc.md"}, obs.docs)
}

func TestAnalyzer_LintPaths(t *testing.T) {
	cfg := lint.NewConfig(core.RuleConfig{"id": "test-word", "word": "hit"})
	a := lint.NewAnalyzer(cfg, testutil.NewTestLogger(t), lint.WithWorkers(4))

	var paths []string
	for i := 0; i < 20; i++ {
		paths = append(paths, fmt.Sprintf("doc-%02d.md", i))
	}

	load := func(_ context.Context, path string) (*core.Document, error) {
		switch path {
		case "doc-03.md":
			return nil, errors.New("unreadable")
		case "doc-05.md", "doc-07.md":
			return core.NewDocument(path, "nothing here"), nil
		}
		return core.NewDocument(path, "a hit"), nil
	}

	results, err := a.LintPaths(context.Background(), paths, load)
	require.NoError(t, err)
	assert.Equal(t, 17, results.Len())
	assert.NotContains(t, results.Paths(), "doc-03.md")
	assert.NotContains(t, results.Paths(), "doc-05.md")

	for i := 1; i < len(results.Paths()); i++ {
		assert.Less(t, results.Paths()[i-1], results.Paths()[i], "results keep input order")
	}
}

func TestAnalyzer_LintPathsCancelled(t *testing.T) {
	cfg := lint.NewConfig(core.RuleConfig{"id": "test-word"})
	a := lint.NewAnalyzer(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.LintPaths(ctx, []string{"a", "b"}, func(_ context.Context, p string) (*core.Document, error) {
		return core.NewDocument(p, "x"), nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzer_Idempotent(t *testing.T) {
	cfg := lint.NewConfig(
		core.RuleConfig{"id": "test-word", "word": "b"},
		core.RuleConfig{"id": "test-fail"},
	)
	docs := []*core.Document{
		core.NewDocument("one.md", "a b c"),
		core.NewDocument("two.md", "b\nb"),
	}

	run := func() []byte {
		a := lint.NewAnalyzer(cfg, nil, lint.WithWorkers(3))
		res, err := a.LintDocuments(context.Background(), docs)
		require.NoError(t, err)
		data, err := json.Marshal(res.Files())
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, run(), run())
}

func TestConfig_OnlyAndDisable(t *testing.T) {
	cfg := lint.NewConfig(
		core.RuleConfig{"id": "a"},
		core.RuleConfig{"id": "b"},
		core.RuleConfig{"id": "c", "enabled": false},
	)
	assert.False(t, cfg.IsDisabled("a"))
	assert.True(t, cfg.IsDisabled("c"))

	cfg.Disable("a")
	assert.True(t, cfg.IsDisabled("a"))
	require.Len(t, cfg.ActiveRules(), 1)
	assert.Equal(t, "b", cfg.ActiveRules()[0].ID())

	cfg = lint.NewConfig(core.RuleConfig{"id": "a"}, core.RuleConfig{"id": "b"}).Only("b")
	assert.True(t, cfg.IsDisabled("a"))
	require.Len(t, cfg.ActiveRules(), 1)
}

func TestRegistry_GetByGroup(t *testing.T) {
	group := lint.GetByGroup("test")
	require.Len(t, group, 1)
	assert.Equal(t, "test-word", group[0].ID)

	assert.Empty(t, lint.GetByGroup("no-such-group"))
	assert.Len(t, lint.GetByGroup(""), lint.Count())
}
