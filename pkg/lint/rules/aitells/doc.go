// Package aitells provides lint rules for vocabulary and phrasing that appear
// far more often in machine-generated prose than in human writing.
//
// Rules in this package:
//   - ai-vocabulary: words such as "delve", "tapestry", "pivotal"
//   - significance-language: "stands as a testament", "enduring legacy"
//   - promotional-language: "nestled in the heart of", "world-class"
//   - superficial-analysis: trailing ", highlighting the importance of ..."
//   - copulative-avoidance: "serves as a" where "is a" would do
//   - negative-parallelism: "not only ... but also ..."
//   - rule-of-three: formulaic "X, Y, and Z" lists
//   - challenges-conclusions: "Despite its ..., faces challenges"
//   - knowledge-cutoff: "as of my last update"
//   - vague-attribution: "experts have noted"
//   - notability-emphasis: "featured in ... and other outlets"
//
// All pattern-list rules accept a `patterns` option replacing the defaults.
package aitells
