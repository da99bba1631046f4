// Package match provides the pattern-list machinery shared by rules that
// count regular-expression hits across a document.
package match

import (
	"fmt"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

// Pattern is one case-insensitive expression. A hit is discarded when Unless
// matches the text immediately following it.
type Pattern struct {
	Expr   string
	Unless string
}

// Exprs wraps plain expressions as patterns.
func Exprs(exprs ...string) []Pattern {
	out := make([]Pattern, len(exprs))
	for i, e := range exprs {
		out[i] = Pattern{Expr: e}
	}
	return out
}

// Sources returns the expressions of patterns, for documentation.
func Sources(patterns []Pattern) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.Expr
	}
	return out
}

// Patterns returns the `patterns` option as patterns, or defaults when unset.
func Patterns(opts map[string]any, defaults []Pattern) []Pattern {
	if custom := lint.GetStringSliceOption(opts, "patterns", nil); custom != nil {
		return Exprs(custom...)
	}
	return defaults
}

// CollectAll returns every hit of every pattern, grouped in pattern order.
func CollectAll(text string, patterns []Pattern) ([]prose.Span, error) {
	var all []prose.Span
	for _, p := range patterns {
		spans, err := prose.FindAll(text, p.Expr)
		if err != nil {
			return nil, err
		}
		if p.Unless == "" {
			all = append(all, spans...)
			continue
		}
		unless, err := prose.Compile(`\A(?:` + p.Unless + `)`)
		if err != nil {
			return nil, err
		}
		for _, sp := range spans {
			if !unless.MatchString(text[sp.End:]) {
				all = append(all, sp)
			}
		}
	}
	return all, nil
}

// Counted describes a rule that reports once when the number of hits reaches
// a configurable threshold.
type Counted struct {
	Defaults  []Pattern
	Threshold int // default for threshold_count
	FailAt    int // hit count that escalates to FAIL; 0 never escalates
	Message   string
}

// Check implements lint.CheckFunc.
func (c Counted) Check(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	hits, err := CollectAll(doc.Text, Patterns(opts, c.Defaults))
	if err != nil {
		return nil, err
	}
	threshold := lint.GetIntOption(opts, "threshold_count", c.Threshold)
	if len(hits) == 0 || len(hits) < threshold {
		return nil, nil
	}

	sev := core.SeverityWarn
	if c.FailAt > 0 && len(hits) >= c.FailAt {
		sev = core.SeverityFail
	}
	f := lint.AtSpan(doc, sev, fmt.Sprintf(c.Message, len(hits)), hits[0]).
		With("count", len(hits))
	return []lint.Finding{f}, nil
}

// Each describes a rule that reports individual hits, up to Limit of them.
type Each struct {
	Defaults []Pattern
	Severity core.Severity
	Limit    int
	Message  string
	// Clip bounds the quoted phrase in the message; 0 quotes it whole.
	Clip int
}

// Check implements lint.CheckFunc.
func (e Each) Check(doc *core.Document, opts map[string]any) ([]lint.Finding, error) {
	hits, err := CollectAll(doc.Text, Patterns(opts, e.Defaults))
	if err != nil {
		return nil, err
	}
	if e.Limit > 0 && len(hits) > e.Limit {
		hits = hits[:e.Limit]
	}

	findings := make([]lint.Finding, 0, len(hits))
	for _, sp := range hits {
		phrase := sp.Text(doc.Text)
		quoted := phrase
		if e.Clip > 0 {
			quoted = prose.Prefix(phrase, e.Clip)
		}
		findings = append(findings, lint.AtSpan(doc, e.Severity, fmt.Sprintf(e.Message, quoted), sp).
			With("phrase", phrase))
	}
	return findings, nil
}
