package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

const (
	topIssues          = 5
	findingsPerSection = 10
)

// Status markers for file headings.
const (
	StatusFail = "🔴"
	StatusWarn = "🟡"
	StatusPass = "🟢"
)

// Markdown writes a human-readable report: summary, top issues, one section
// per file ordered by FAIL then WARN count, and recommendations.
type Markdown struct{}

// Extension implements Reporter.
func (Markdown) Extension() string { return ".md" }

// Write implements Reporter.
func (Markdown) Write(w io.Writer, results *lint.Results) error {
	summary := lint.Summarize(results)

	lines := []string{
		"# ContentLint Report\n",
		"## Summary\n",
		fmt.Sprintf("- **Total Files Scanned**: %d", summary.TotalFiles),
		fmt.Sprintf("- **Total Findings**: %d", summary.TotalFindings),
		fmt.Sprintf("- **FAIL**: %d", summary.SeverityCounts[core.SeverityFail]),
		fmt.Sprintf("- **WARN**: %d", summary.SeverityCounts[core.SeverityWarn]),
		fmt.Sprintf("- **PASS**: %d", summary.SeverityCounts[core.SeverityPass]),
		"",
	}

	if len(summary.TopRules) > 0 {
		lines = append(lines, "## Top Issues\n")
		for i, rc := range summary.TopRules {
			if i == topIssues {
				break
			}
			lines = append(lines, fmt.Sprintf("- **%s**: %d occurrences", rc.RuleID, rc.Count))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Files with Issues\n")
	for _, path := range sortedBySeverity(results) {
		findings := results.Findings(path)
		if len(findings) == 0 {
			continue
		}
		lines = append(lines, fileSection(path, findings)...)
	}

	lines = append(lines,
		"## Recommendations\n",
		"1. **FAIL items**: Address these immediately - they significantly impact content quality",
		"2. **WARN items**: Review and fix where appropriate",
		"3. Review the most common issues (Top Issues section) first for maximum impact",
		"",
	)

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// sortedBySeverity orders paths by FAIL count, then WARN count, highest
// first. Ties keep result order.
func sortedBySeverity(results *lint.Results) []string {
	paths := append([]string(nil), results.Paths()...)
	type counts struct{ fails, warns int }
	byPath := make(map[string]counts, len(paths))
	for _, p := range paths {
		f, w := lint.FileCounts(results.Findings(p))
		byPath[p] = counts{f, w}
	}
	sort.SliceStable(paths, func(i, j int) bool {
		a, b := byPath[paths[i]], byPath[paths[j]]
		if a.fails != b.fails {
			return a.fails > b.fails
		}
		return a.warns > b.warns
	})
	return paths
}

// StatusMarker returns the heading marker for a file.
func StatusMarker(fails, warns int) string {
	switch {
	case fails > 0:
		return StatusFail
	case warns > 0:
		return StatusWarn
	default:
		return StatusPass
	}
}

func fileSection(path string, findings []lint.Finding) []string {
	fails, warns := lint.FileCounts(findings)
	lines := []string{
		fmt.Sprintf("### %s %s", StatusMarker(fails, warns), path),
		fmt.Sprintf("*%d FAIL, %d WARN*\n", fails, warns),
	}

	for _, sev := range []core.Severity{core.SeverityFail, core.SeverityWarn} {
		var group []lint.Finding
		for _, f := range findings {
			if f.Severity == sev {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("**%s:**", sev))
		for i, f := range group {
			if i == findingsPerSection {
				break
			}
			lineInfo := ""
			if n := f.LineOrZero(); n > 0 {
				lineInfo = fmt.Sprintf(" (line %d)", n)
			}
			lines = append(lines, fmt.Sprintf("- [%s]%s: %s", f.RuleID, lineInfo, f.Message))
			if f.Snippet != "" {
				lines = append(lines, "  ```", "  "+f.Snippet, "  ```")
			}
		}
		lines = append(lines, "")
	}
	return append(lines, "")
}
