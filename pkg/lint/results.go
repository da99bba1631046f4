package lint

import "github.com/leapstack-labs/contentlint/pkg/core"

// Results maps document paths to their findings, keeping insertion order.
type Results struct {
	paths []string
	files map[string][]Finding
}

// NewResults returns an empty result set.
func NewResults() *Results {
	return &Results{files: make(map[string][]Finding)}
}

// Add appends findings for path.
func (r *Results) Add(path string, findings []Finding) {
	if _, ok := r.files[path]; !ok {
		r.paths = append(r.paths, path)
	}
	r.files[path] = append(r.files[path], findings...)
}

// Paths returns document paths in insertion order.
func (r *Results) Paths() []string {
	if r == nil {
		return nil
	}
	return r.paths
}

// Findings returns the findings recorded for path.
func (r *Results) Findings(path string) []Finding {
	if r == nil {
		return nil
	}
	return r.files[path]
}

// Len returns the number of documents in the result set.
func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.paths)
}

// TotalFindings returns the number of findings across all documents.
func (r *Results) TotalFindings() int {
	n := 0
	for _, p := range r.Paths() {
		n += len(r.files[p])
	}
	return n
}

// Files returns the results as a plain map, for serialization.
func (r *Results) Files() map[string][]Finding {
	out := make(map[string][]Finding, r.Len())
	for _, p := range r.Paths() {
		out[p] = r.files[p]
	}
	return out
}

// Each calls fn for every document in insertion order.
func (r *Results) Each(fn func(path string, findings []Finding)) {
	for _, p := range r.Paths() {
		fn(p, r.files[p])
	}
}

// SeverityCounts tallies findings per severity. Every severity is present.
type SeverityCounts map[core.Severity]int

// NewSeverityCounts returns zero-filled counts.
func NewSeverityCounts() SeverityCounts {
	return SeverityCounts{
		core.SeverityPass: 0,
		core.SeverityWarn: 0,
		core.SeverityFail: 0,
	}
}

// CountSeverities tallies every finding in r.
func CountSeverities(r *Results) SeverityCounts {
	counts := NewSeverityCounts()
	r.Each(func(_ string, findings []Finding) {
		for _, f := range findings {
			counts[f.Severity]++
		}
	})
	return counts
}

// ShouldFail reports whether any finding is at or above threshold under
// PASS < WARN < FAIL. A PASS threshold trips on any finding at all.
func ShouldFail(counts SeverityCounts, threshold core.Severity) bool {
	for sev := threshold; sev <= core.SeverityFail; sev++ {
		if counts[sev] > 0 {
			return true
		}
	}
	return false
}
