// Package lint provides the prose rule engine.
//
// # Architecture
//
// The lint package has three layers:
//
//  1. Root package (pkg/lint/): Finding, the Rule interface, the registry, and the Analyzer
//  2. Rule packages (pkg/lint/rules/...): one file per rule, registered from init()
//  3. Shared matching helpers (pkg/lint/internal/match/): pattern-list rules
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/contentlint/pkg/lint/rules"
//
// # Rule Groups
//
//   - style: word- and phrase-level habits (banned words, hedges, adverbs, transitions)
//   - rhythm: sentence-level statistics (variance, passive voice, repetition)
//   - ai-tells: vocabulary and phrasing associated with machine-generated prose
//   - custom: user-supplied Starlark checks
//
// # Configuration
//
// A run is configured by a list of rule entries, usually read from contentlint.yaml:
//
//	cfg := lint.NewConfig(
//		core.RuleConfig{"id": "banned-words", "banned_words": []any{"very"}},
//		core.RuleConfig{"id": "passive-voice", "threshold_percent": 15},
//	)
//	cfg.Disable("passive-voice")
//
// # Running
//
//	analyzer := lint.NewAnalyzer(cfg, logger, lint.WithWorkers(4))
//	results, err := analyzer.LintPaths(ctx, paths, loader)
//	counts := lint.CountSeverities(results)
//	if lint.ShouldFail(counts, core.SeverityWarn) { ... }
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "my-rule",
//		Name:        "custom.my_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    core.SeverityWarn,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
