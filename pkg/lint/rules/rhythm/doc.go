// Package rhythm provides lint rules that look at a document as a whole:
// sentence length variance, passive voice share and word repetition.
package rhythm
