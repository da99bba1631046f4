package lint

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

// Severity is re-exported so rule packages can refer to lint.Severity* directly.
type Severity = core.Severity

// Severity levels for findings.
const (
	SeverityPass = core.SeverityPass
	SeverityWarn = core.SeverityWarn
	SeverityFail = core.SeverityFail
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Rule identifier used in contentlint.yaml, e.g., "banned-words"
	Name        string        // Human-readable name, e.g., "style.banned_words"
	Group       string        // Category, e.g., "style", "rhythm", "ai-tells"
	Description string        // Human-readable description
	Severity    core.Severity // Highest severity the rule emits
	Check       CheckFunc     // The check function
	Setup       SetupFunc     // Optional: builds a check bound to one configuration
	ConfigKeys  []string      // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Prose showing the anti-pattern
	GoodExample string // Prose showing the preferred pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes one document and returns findings.
// The opts parameter contains the rule's entry from configuration.
// Returned findings need not set RuleID, FilePath or Category; the Checker stamps them.
type CheckFunc func(doc *core.Document, opts map[string]any) ([]Finding, error)

// SetupFunc prepares a check for one configuration entry. Rules that load
// external resources (scripts) use it so the work happens once per run.
type SetupFunc func(opts map[string]any) (CheckFunc, error)

// =============================================================================
// Findings
// =============================================================================

// Finding represents one detected issue in one document.
type Finding struct {
	RuleID   string         `json:"rule_id"`
	Severity core.Severity  `json:"severity"`
	Message  string         `json:"message"`
	FilePath string         `json:"file_path"`
	Snippet  string         `json:"snippet"`
	Line     *int           `json:"line"`
	Details  map[string]any `json:"details"`

	// Category comes from the rule configuration and feeds report summaries.
	Category string `json:"-"`
}

// At builds a finding anchored at doc.Text[start:end]. The snippet comes from
// the normalized text; the line refers to the raw file.
func At(doc *core.Document, sev core.Severity, msg string, start, end int) Finding {
	line := prose.LineNumber(doc.Raw, prose.RawOffset(doc.Text, doc.Raw, start, end))
	return Finding{
		Severity: sev,
		Message:  msg,
		Snippet:  prose.ContextSnippet(doc.Text, start, end, prose.DefaultRadius),
		Line:     &line,
		Details:  map[string]any{},
	}
}

// AtSpan is At for a prose.Span.
func AtSpan(doc *core.Document, sev core.Severity, msg string, sp prose.Span) Finding {
	return At(doc, sev, msg, sp.Start, sp.End)
}

// With returns a copy of f with the detail key set.
func (f Finding) With(key string, value any) Finding {
	details := make(map[string]any, len(f.Details)+1)
	for k, v := range f.Details {
		details[k] = v
	}
	details[key] = value
	f.Details = details
	return f
}

// MarshalJSON keeps the decimal point on whole-number float details, so a
// rate of 100 is written as 100.0 and stays distinguishable from a count.
func (f Finding) MarshalJSON() ([]byte, error) {
	type plain Finding
	p := plain(f)
	if f.Details != nil {
		p.Details = make(map[string]any, len(f.Details))
		for k, v := range f.Details {
			p.Details[k] = floatJSON(v)
		}
	}
	return json.Marshal(p)
}

// floatJSON rewrites whole-number floats, including those nested in lists
// and maps, as json.Number with one decimal place.
func floatJSON(v any) any {
	switch n := v.(type) {
	case float64:
		// beyond 1e16 the default exponent form is already unambiguous
		if n == math.Trunc(n) && math.Abs(n) < 1e16 {
			return json.Number(strconv.FormatFloat(n, 'f', 1, 64))
		}
		return n
	case float32:
		return floatJSON(float64(n))
	case []float64:
		out := make([]any, len(n))
		for i, x := range n {
			out[i] = floatJSON(x)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, x := range n {
			out[i] = floatJSON(x)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, x := range n {
			out[k] = floatJSON(x)
		}
		return out
	default:
		return v
	}
}

// LineOrZero returns the line number, or 0 when the finding has none.
func (f Finding) LineOrZero() int {
	if f.Line == nil {
		return 0
	}
	return *f.Line
}
