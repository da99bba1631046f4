package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// Severity grades a finding. Values are ordered: PASS < WARN < FAIL.
type Severity int

// Severity levels for findings.
const (
	// SeverityPass is informational and never blocks on its own.
	SeverityPass Severity = iota
	// SeverityWarn marks prose that should be reviewed.
	SeverityWarn
	// SeverityFail marks prose that should block acceptance.
	SeverityFail
)

// Severities lists all severities from most to least severe.
var Severities = []Severity{SeverityFail, SeverityWarn, SeverityPass}

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "PASS"
	case SeverityWarn:
		return "WARN"
	case SeverityFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the three defined severities.
func (s Severity) Valid() bool {
	return s >= SeverityPass && s <= SeverityFail
}

// ParseSeverity converts a string to a Severity value, ignoring case.
// Returns the severity and true if valid, or SeverityFail and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PASS":
		return SeverityPass, true
	case "WARN", "WARNING":
		return SeverityWarn, true
	case "FAIL", "ERROR":
		return SeverityFail, true
	default:
		return SeverityFail, false
	}
}

// MarshalText encodes the severity by name so it can be used as a JSON value or map key.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	v, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", string(text))
	}
	*s = v
	return nil
}

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo provides metadata about a lint rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}
