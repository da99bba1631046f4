package lint

import "github.com/leapstack-labs/contentlint/pkg/core"

// Config controls which rules run and with which options.
type Config struct {
	// LintConfig holds the configured rule entries in file order
	core.LintConfig

	// DisabledRules contains rule IDs to skip regardless of the entry's enabled flag
	DisabledRules map[string]bool

	// OnlyRules, when non-empty, restricts the run to these rule IDs
	OnlyRules map[string]bool
}

// NewConfig creates a configuration from rule entries.
func NewConfig(rules ...core.RuleConfig) *Config {
	return &Config{
		LintConfig:    core.LintConfig{Rules: rules},
		DisabledRules: make(map[string]bool),
		OnlyRules:     make(map[string]bool),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	if c.DisabledRules[ruleID] {
		return true
	}
	if len(c.OnlyRules) > 0 && !c.OnlyRules[ruleID] {
		return true
	}
	if r, ok := c.Rule(ruleID); ok && !r.Enabled() {
		return true
	}
	return false
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// Only restricts the run to the given rule IDs.
func (c *Config) Only(ruleIDs ...string) *Config {
	for _, id := range ruleIDs {
		c.OnlyRules[id] = true
	}
	return c
}

// ActiveRules returns the entries that should be turned into checkers, in order.
func (c *Config) ActiveRules() []core.RuleConfig {
	if c == nil {
		return nil
	}
	enabled := c.EnabledRules()
	active := make([]core.RuleConfig, 0, len(enabled))
	for _, r := range enabled {
		if c.DisabledRules[r.ID()] {
			continue
		}
		if len(c.OnlyRules) > 0 && !c.OnlyRules[r.ID()] {
			continue
		}
		active = append(active, r)
	}
	return active
}
