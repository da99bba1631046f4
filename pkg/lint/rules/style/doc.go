// Package style provides lint rules about word choice and sentence openings.
//
// Rules in this package:
//   - banned-words: filler words used above a rate per 1,000 words
//   - weak-phrases: hedges such as "I think", graded by the claim around them
//   - adverbs: -ly adverb density
//   - stacked-intensifiers: "really quickly", "very carefully"
//   - transitions: transition word density
//   - conjunction-starts: sentences opening with and/but/so
//   - vague-this: "This is", "This means" at a sentence start
package style
