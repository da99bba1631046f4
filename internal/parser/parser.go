// Package parser turns Markdown and HTML files into normalized documents.
//
// Normalization removes markup so rules see prose only. The original file
// content is kept as Document.Raw so line numbers can refer to it.
package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
)

// ErrUnsupportedFormat is returned for files that are neither Markdown nor HTML.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Metadata keys set by the parsers.
const (
	MetaHasFrontmatter   = "has_frontmatter"
	MetaFrontmatter      = "frontmatter"
	MetaFrontmatterError = "frontmatter_error"
	MetaTitle            = "title"
)

// Format is a supported input format.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Extensions lists the file extensions the parser accepts.
var Extensions = []string{".md", ".html", ".htm"}

// FormatOf returns the format for path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return FormatMarkdown, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Parser normalizes content by format.
type Parser struct {
	HTMLMode HTMLMode
}

// New returns a parser using the given HTML mode.
func New(mode HTMLMode) *Parser {
	return &Parser{HTMLMode: mode}
}

// Parse normalizes content read from path, choosing the format by extension.
func (p *Parser) Parse(path, content string) (*core.Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	return p.ParseAs(format, path, content)
}

// ParseAs normalizes content in the given format. path is only an identifier.
func (p *Parser) ParseAs(format Format, path, content string) (*core.Document, error) {
	switch format {
	case FormatMarkdown:
		return ParseMarkdown(path, content), nil
	case FormatHTML:
		return ParseHTML(path, content, p.HTMLMode)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ParseFile reads and normalizes a file.
func (p *Parser) ParseFile(path string) (*core.Document, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from discovery or the command line
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.Parse(path, string(data))
}

// Load adapts ParseFile to the lint.Loader signature.
func (p *Parser) Load(_ context.Context, path string) (*core.Document, error) {
	return p.ParseFile(path)
}
