package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// JSON writes `{"summary": ..., "files": {path: [finding, ...]}}` with
// two-space indentation. Files keep result order.
type JSON struct{}

// Extension implements Reporter.
func (JSON) Extension() string { return ".json" }

// Document is the JSON report body.
type Document struct {
	Summary lint.Summary `json:"summary"`
	Files   orderedFiles `json:"files"`
}

// NewDocument builds the JSON report body for results.
func NewDocument(results *lint.Results) Document {
	return Document{
		Summary: lint.Summarize(results),
		Files:   orderedFiles{results},
	}
}

// Write implements Reporter.
func (JSON) Write(w io.Writer, results *lint.Results) error {
	out, err := json.MarshalIndent(NewDocument(results), "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// orderedFiles serializes results as an object keyed by path in insertion order.
type orderedFiles struct {
	results *lint.Results
}

func (o orderedFiles) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range o.results.Paths() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		findings := o.results.Findings(path)
		if findings == nil {
			findings = []lint.Finding{}
		}
		val, err := json.Marshal(findings)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
