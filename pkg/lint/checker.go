package lint

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/contentlint/pkg/core"
)

// ErrUnknownRule is returned when a configuration names a rule that is not registered.
var ErrUnknownRule = errors.New("unknown rule type")

// Checker is a registered rule bound to one configuration entry.
// It holds no state between documents and is safe for concurrent use.
type Checker struct {
	def   RuleDef
	cfg   core.RuleConfig
	check CheckFunc
}

// NewChecker looks up cfg's id in the registry and binds it to cfg.
func NewChecker(cfg core.RuleConfig) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	def, ok := GetByID(cfg.ID())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, cfg.ID())
	}

	check := def.Check
	if def.Setup != nil {
		var err error
		check, err = def.Setup(cfg.Options())
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", def.ID, err)
		}
	}
	if check == nil {
		return nil, fmt.Errorf("rule %s has no check function", def.ID)
	}

	return &Checker{def: def, cfg: cfg, check: check}, nil
}

// ID returns the rule identifier.
func (c *Checker) ID() string { return c.def.ID }

// Category returns the category configured for the rule.
func (c *Checker) Category() string { return c.cfg.Category() }

// Rule returns the registered definition behind the checker.
func (c *Checker) Rule() RuleDef { return c.def }

// Check runs the rule against doc and stamps rule, file and category on every finding.
func (c *Checker) Check(doc *core.Document) ([]Finding, error) {
	findings, err := c.check(doc, c.cfg.Options())
	if err != nil {
		return nil, err
	}
	for i := range findings {
		findings[i].RuleID = c.def.ID
		findings[i].FilePath = doc.Path
		findings[i].Category = c.cfg.Category()
		if findings[i].Details == nil {
			findings[i].Details = map[string]any{}
		}
	}
	return findings, nil
}
