package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule groups - each registers its rules via init()
	_ "github.com/leapstack-labs/contentlint/pkg/lint/rules/aitells"
	_ "github.com/leapstack-labs/contentlint/pkg/lint/rules/custom"
	_ "github.com/leapstack-labs/contentlint/pkg/lint/rules/rhythm"
	_ "github.com/leapstack-labs/contentlint/pkg/lint/rules/style"
)
