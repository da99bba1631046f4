package lint

import "github.com/leapstack-labs/contentlint/pkg/core"

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "banned-words"
	ID() string

	// Name returns the human-readable name, e.g., "style.banned_words"
	Name() string

	// Group returns the category, e.g., "style", "rhythm", "ai-tells"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the highest severity this rule emits
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists
	BadExample() string  // Prose showing the anti-pattern
	GoodExample() string // Prose showing the preferred pattern
	Fix() string         // How to fix violations (when not obvious)
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }

func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }
