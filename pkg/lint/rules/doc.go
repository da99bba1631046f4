// Package rules provides the built-in contentlint rule implementations.
//
// Rules are organized by group:
//   - style: word choice and sentence openings (banned-words, weak-phrases, adverbs, ...)
//   - rhythm: sentence length, passive voice and repetition across a document
//   - aitells: vocabulary and phrasing typical of machine-generated prose
//   - custom: user-supplied Starlark rules
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/contentlint/pkg/lint/rules"
//
// Individual groups can also be imported:
//
//	import _ "github.com/leapstack-labs/contentlint/pkg/lint/rules/style"
package rules
