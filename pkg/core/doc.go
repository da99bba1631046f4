// Package core defines the shared language of the contentlint system.
//
// This package contains:
//   - Severity and the RuleInfo documentation DTO
//   - Document, the parsed text bundle handed to rule checkers
//   - Configuration types (RuleConfig, LintConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
