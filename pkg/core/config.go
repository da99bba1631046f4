package core

import (
	"errors"
	"strings"
)

// DefaultCategory is the category assigned to rules that do not set one.
const DefaultCategory = "general"

// ErrMissingRuleID is returned when a rule entry has no id.
var ErrMissingRuleID = errors.New("rule entry has no id")

// RuleConfig is one entry of the `rules:` list in contentlint.yaml.
//
// Only `id` is required. `enabled`, `category` and `description` are shared by
// every rule; all remaining keys are rule-specific options such as thresholds
// and word lists.
type RuleConfig map[string]any

// ID returns the rule identifier.
func (c RuleConfig) ID() string {
	id, _ := c["id"].(string)
	return strings.TrimSpace(id)
}

// Enabled reports whether the rule should run. Missing means enabled.
func (c RuleConfig) Enabled() bool {
	switch v := c["enabled"].(type) {
	case bool:
		return v
	case string:
		return !strings.EqualFold(v, "false") && v != "0"
	default:
		return true
	}
}

// Category returns the configured category or DefaultCategory.
func (c RuleConfig) Category() string {
	if s, ok := c["category"].(string); ok && s != "" {
		return s
	}
	return DefaultCategory
}

// Description returns the configured description, if any.
func (c RuleConfig) Description() string {
	s, _ := c["description"].(string)
	return s
}

// Options returns the entry as a plain option map for typed getters.
func (c RuleConfig) Options() map[string]any {
	return map[string]any(c)
}

// Validate checks the fields every rule entry must carry.
func (c RuleConfig) Validate() error {
	if c.ID() == "" {
		return ErrMissingRuleID
	}
	return nil
}

// LintConfig is the rule section of a contentlint configuration file.
type LintConfig struct {
	Rules []RuleConfig `koanf:"rules" yaml:"rules" json:"rules"`
}

// Rule returns the first entry with the given id.
func (c *LintConfig) Rule(id string) (RuleConfig, bool) {
	if c == nil {
		return nil, false
	}
	for _, r := range c.Rules {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// EnabledRules returns the entries that are switched on, in file order.
func (c *LintConfig) EnabledRules() []RuleConfig {
	if c == nil {
		return nil
	}
	out := make([]RuleConfig, 0, len(c.Rules))
	for _, r := range c.Rules {
		if r.Enabled() {
			out = append(out, r)
		}
	}
	return out
}
