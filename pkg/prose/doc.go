// Package prose holds the text primitives shared by every rule checker:
// word tokenization, heuristic sentence splitting, rate helpers, line and
// snippet extraction, and cached pattern lookup for anchoring findings.
//
// All functions are pure and safe for concurrent use.
package prose
