package lint

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/leapstack-labs/contentlint/pkg/core"
)

// RuleCount is the number of findings one rule produced.
type RuleCount struct {
	RuleID string
	Count  int
}

// RuleCounts is ordered by count, highest first. It serializes as a JSON
// object whose keys keep that order.
type RuleCounts []RuleCount

// MarshalJSON writes the counts as an ordered object.
func (rc RuleCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range rc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.RuleID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Summary holds report-level statistics for a run.
type Summary struct {
	TotalFiles     int            `json:"total_files"`
	TotalFindings  int            `json:"total_findings"`
	SeverityCounts SeverityCounts `json:"severity_counts"`
	TopRules       RuleCounts     `json:"top_rules"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// MaxTopRules bounds Summary.TopRules.
const MaxTopRules = 10

// Summarize computes statistics over r. Ties in TopRules keep first-seen order.
func Summarize(r *Results) Summary {
	s := Summary{
		TotalFiles:     r.Len(),
		TotalFindings:  r.TotalFindings(),
		SeverityCounts: CountSeverities(r),
		CategoryCounts: make(map[string]int),
	}

	index := make(map[string]int)
	var rules RuleCounts
	r.Each(func(_ string, findings []Finding) {
		for _, f := range findings {
			i, ok := index[f.RuleID]
			if !ok {
				i = len(rules)
				index[f.RuleID] = i
				rules = append(rules, RuleCount{RuleID: f.RuleID})
			}
			rules[i].Count++

			cat := f.Category
			if cat == "" {
				cat = core.DefaultCategory
			}
			s.CategoryCounts[cat]++
		}
	})

	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Count > rules[j].Count })
	if len(rules) > MaxTopRules {
		rules = rules[:MaxTopRules]
	}
	if rules == nil {
		rules = RuleCounts{}
	}
	s.TopRules = rules
	return s
}

// FileCounts returns the FAIL and WARN counts of one document's findings.
func FileCounts(findings []Finding) (fails, warns int) {
	for _, f := range findings {
		switch f.Severity {
		case core.SeverityFail:
			fails++
		case core.SeverityWarn:
			warns++
		}
	}
	return fails, warns
}
