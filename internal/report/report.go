// Package report renders lint results as JSON or Markdown documents.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// ErrUnsupportedFormat is returned by New for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Reporter writes a report for a result set.
type Reporter interface {
	// Write renders results to w.
	Write(w io.Writer, results *lint.Results) error
	// Extension is the conventional file extension, with the dot.
	Extension() string
}

// Formats lists the accepted format names.
var Formats = []string{"md", "markdown", "json"}

// New returns the reporter for a format name, ignoring case.
func New(format string) (Reporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSON{}, nil
	case "md", "markdown":
		return Markdown{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// WriteFile renders results to path, creating parent directories.
func WriteFile(path string, rep Reporter, results *lint.Results) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // G304: output path is chosen by the user
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()
	return rep.Write(f, results)
}

// Render returns the report as a string.
func Render(rep Reporter, results *lint.Results) (string, error) {
	var sb strings.Builder
	if err := rep.Write(&sb, results); err != nil {
		return "", err
	}
	return sb.String(), nil
}
